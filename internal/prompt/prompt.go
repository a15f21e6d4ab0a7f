// Package prompt assembles the instruction sent to the language model.
package prompt

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/XenosWarlocks/AI-Email-Personalization/internal/generator"
)

// DisclaimerMarker is the phrase every generated email must carry.
const DisclaimerMarker = "THIS IS A TEST EMAIL"

// Category pairs an email type with the context used in its subject line.
type Category struct {
	EmailType      string
	SubjectContext string
}

// Catalog lists the email categories a prompt is drawn from.
var Catalog = []Category{
	{EmailType: "Internal Memo", SubjectContext: "Team update regarding unexpected facts"},
	{EmailType: "Bug Report", SubjectContext: "Strange behavior observation"},
	{EmailType: "Newsletter", SubjectContext: "Weekly Random Facts Digest"},
	{EmailType: "Meeting Minutes", SubjectContext: "Unusual discoveries discussion"},
	{EmailType: "Project Update", SubjectContext: "Interesting findings report"},
	{EmailType: "Survey Results", SubjectContext: "Unexpected data patterns"},
}

// Priorities are the subject tags a prompt may carry. The empty tag means none.
var Priorities = []string{"", "[High Priority]", "[Low Priority]", "[Urgent]"}

const disclaimerText = `+==================================================+
|            ` + DisclaimerMarker + `                   |
|            DO NOT REPLY OR TAKE ACTION            |
+==================================================+
Test Email ID: {{.TestID}}
Generated on: {{.Timestamp}}
This email was automatically generated for testing purposes.
Any resemblance to real emails or situations is purely coincidental.
+==================================================+`

const promptText = `Generate a test email using only plain text (no markdown) with this exact structure:

1. Start with these exact headers:
From: {{.From}}
To: {{.To}}
Date: {{.Timestamp}}
Subject: {{.Subject}}

2. Then add this exact disclaimer:
{{.Disclaimer}}

3. Email Content Requirements:
- Format as a {{.Category.EmailType}}
- Word count: approximately {{.WordCount}} words
- Include 3-4 random, unsettling, and true psychological insights or facts about society and the dark corners of society
- Make content provocative, reflective, and slightly unsettling (this is test email #{{.EmailNumber}})
- Use plain text formatting (no markdown)

4. Include these sections with plain text formatting:
- A clear introduction that questions the reader's assumptions about society
- Main content featuring random psychological insights or dark truths, woven into a narrative
- A simple ASCII table if needed (e.g., human emotion and irrationality comparisons)
- A "Next Steps" or "Reflective Questions" section that encourages introspection or action
- A signature block with an enigmatic or thought-provoking statement

5. Optional elements to randomly include:
- Thread history markers (use > for quoted text)
- References to fictitious attachments (e.g., [Attachment: human_condition.pdf])
- Priority indicators that imply urgency for existential questions
- Department tags suggesting a connection to the unknown or unexplainable

6. Formatting Guidelines:
- Use plain text characters for emphasis (*, _, =)
- Use ASCII characters for tables and borders
- Use standard email quoting for threads (>)
- Separate sections with blank lines
- Use simple bullet points (* or -)

7. Tone Guidelines:
- Evoke curiosity and discomfort simultaneously
- Blend scientific accuracy with a narrative touch
- Conclude with a subtle invitation to explore deeper questions about human existence and choices

Format everything as plain text that would be readable in any email client.`

var (
	disclaimerTmpl = template.Must(template.New("disclaimer").Parse(disclaimerText))
	promptTmpl     = template.Must(template.New("prompt").Parse(promptText))
)

// Builder renders prompts using a metadata generator for its random draws.
type Builder struct {
	gen *generator.Generator
}

// NewBuilder returns a Builder drawing from gen.
func NewBuilder(gen *generator.Generator) *Builder {
	return &Builder{gen: gen}
}

type promptData struct {
	From        string
	To          string
	Timestamp   string
	Subject     string
	Disclaimer  string
	Category    Category
	WordCount   int
	EmailNumber int
}

// Build returns the full instruction for one email. The test id appears in the
// subject line and in the disclaimer block; the sender's timestamp is used for
// both the Date header and the disclaimer.
func (b *Builder) Build(wordCount, emailNumber int, testID string) string {
	category := Catalog[b.gen.Intn(len(Catalog))]
	priority := Priorities[b.gen.Intn(len(Priorities))]
	sender := b.gen.Identity()
	to := b.gen.Address()

	return render(promptTmpl, promptData{
		From:        sender.Address,
		To:          to,
		Timestamp:   sender.Timestamp,
		Subject:     Subject(priority, category.SubjectContext, testID),
		Disclaimer:  Disclaimer(testID, sender.Timestamp),
		Category:    category,
		WordCount:   wordCount,
		EmailNumber: emailNumber,
	})
}

// Subject formats the subject line value: [TEST] <priority> <context> - <test id>.
func Subject(priority, context, testID string) string {
	parts := []string{"[TEST]"}
	if priority != "" {
		parts = append(parts, priority)
	}
	parts = append(parts, context, "-", testID)
	return strings.Join(parts, " ")
}

// Disclaimer renders the boxed test disclaimer for testID.
func Disclaimer(testID, timestamp string) string {
	return render(disclaimerTmpl, struct {
		TestID    string
		Timestamp string
	}{TestID: testID, Timestamp: timestamp})
}

func render(tmpl *template.Template, data any) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// Templates are parsed at init and only reference known fields.
		panic(err)
	}
	return buf.String()
}
