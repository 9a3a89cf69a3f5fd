package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

// Template names understood by the notifier worker.
const (
	Welcome        = "welcome"
	ReviewReceived = "review_received"
)

var welcomeHTML = template.Must(template.New(Welcome).Parse(`
<html>
  <body style="font-family:Arial,sans-serif;color:#333;">
    <h2>Welcome to {{.AppName}}, {{.Name}}!</h2>
    <p>Your account is ready. List something you no longer wear, or find your next favorite piece.</p>
    <p>Every item you sell or donate keeps clothing out of landfill.</p>
    <p style="color:#888;font-size:12px;">You received this mail because an account was created with this address.</p>
  </body>
</html>
`))

var reviewReceivedHTML = template.Must(template.New(ReviewReceived).Parse(`
<html>
  <body style="font-family:Arial,sans-serif;color:#333;">
    <h2>You have a new review</h2>
    <p>{{.BuyerName}} left you a {{.Rating}}-star review.</p>
    {{if .Comment}}<blockquote style="border-left:3px solid #ccc;padding-left:8px;">{{.Comment}}</blockquote>{{end}}
    <p>Your rating is now {{.SellerRating}} across {{.TotalReviews}} reviews.</p>
  </body>
</html>
`))

// Render renders the named template with data and returns subject, text and HTML bodies.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	var tpl *template.Template
	switch name {
	case Welcome:
		tpl = welcomeHTML
		subject = fmt.Sprintf("Welcome to %v", data["AppName"])
		text = fmt.Sprintf("Welcome to %v, %v! Your account is ready.", data["AppName"], data["Name"])
	case ReviewReceived:
		tpl = reviewReceivedHTML
		subject = "You have a new review"
		text = fmt.Sprintf("%v left you a %v-star review.", data["BuyerName"], data["Rating"])
	default:
		return "", "", "", fmt.Errorf("unknown template %q", name)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", "", "", err
	}
	return subject, text, buf.String(), nil
}
