package contact

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"facility-services/internal/costs"
	"facility-services/internal/i18n"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var htmlTemplate = template.Must(template.New("enquiry").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<body style="font-family: Arial, sans-serif; color: #1f2937;">
  <h2>{{.Subject}}</h2>
  <table cellpadding="4">
    {{range .Fields}}<tr><td><strong>{{.Label}}</strong></td><td>{{.Value}}</td></tr>
    {{end}}
  </table>
  <p style="white-space: pre-wrap;">{{.Message}}</p>
  {{with .Quote}}
  <h3>{{.Heading}}</h3>
  <table cellpadding="4">
    {{range .Rows}}<tr><td>{{.Label}}</td><td style="text-align: right;">{{.Value}}</td></tr>
    {{end}}
  </table>
  {{end}}
</body>
</html>
`))

type field struct {
	Label string
	Value string
}

type quoteSection struct {
	Heading string
	Rows    []field
}

type emailData struct {
	Lang    string
	Subject string
	Fields  []field
	Message string
	Quote   *quoteSection
}

// render builds the plain text and HTML bodies of an enquiry e-mail
func render(tr *i18n.Translator, subject string, sub Submission, estimate *costs.Comparison) (text, html string, err error) {
	data := emailData{
		Lang:    tr.Language(),
		Subject: subject,
		Message: sub.Message,
	}

	data.Fields = append(data.Fields,
		field{tr.Text("contact.field.service"), tr.Text("service." + sub.Category)},
		field{tr.Text("contact.field.name"), sub.Name},
		field{tr.Text("contact.field.email"), sub.Email},
	)
	if sub.Phone != "" {
		data.Fields = append(data.Fields, field{tr.Text("contact.field.phone"), sub.Phone})
	}
	if sub.Company != "" {
		data.Fields = append(data.Fields, field{tr.Text("contact.field.company"), sub.Company})
	}

	if estimate != nil {
		p := message.NewPrinter(language.Make(tr.Language()))
		data.Quote = &quoteSection{
			Heading: tr.Text("contact.quote.heading"),
			Rows: []field{
				{tr.Text("contact.quote.area"), p.Sprintf("%.0f m²", estimate.Area)},
				{tr.Text("contact.quote.depth"), tr.Text("costs.depth." + estimate.Depth.String())},
				{tr.Text("contact.quote.frequency"), p.Sprintf("%d", estimate.Frequency)},
				{tr.Text("contact.quote.professional"), p.Sprintf("%.2f €", estimate.Professional.SeasonalCost)},
				{tr.Text("contact.quote.diy"), p.Sprintf("%.2f €", estimate.DIY.FirstYearCost)},
				{tr.Text("contact.quote.difference"), p.Sprintf("%.2f €", estimate.Difference)},
			},
		}
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("failed to render e-mail: %w", err)
	}

	return plainText(data), buf.String(), nil
}

func plainText(data emailData) string {
	var b strings.Builder
	b.WriteString(data.Subject + "\n\n")
	for _, f := range data.Fields {
		fmt.Fprintf(&b, "%s: %s\n", f.Label, f.Value)
	}
	b.WriteString("\n" + data.Message + "\n")
	if data.Quote != nil {
		b.WriteString("\n" + data.Quote.Heading + "\n")
		for _, r := range data.Quote.Rows {
			fmt.Fprintf(&b, "  %s: %s\n", r.Label, r.Value)
		}
	}
	return b.String()
}
