package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testID = "TEST-20240315123045-ABC123"

func validEmail() string {
	body := strings.Repeat("lorem ipsum dolor sit amet ", 12)
	return "From: abcdefgh.qa@testing.org\n" +
		"To: hgfedcba.dev@qamail.net\n" +
		"Subject: [TEST] Weekly Random Facts Digest - " + testID + "\n" +
		"+===========+\n| THIS IS A TEST EMAIL |\n+===========+\n" +
		body
}

func TestValidateAccepts(t *testing.T) {
	ok, reason := Validate(validEmail(), testID)
	assert.True(t, ok)
	assert.Empty(t, reason)
	assert.NoError(t, Check(validEmail(), testID))
}

func TestValidateRejectsEachRule(t *testing.T) {
	valid := validEmail()
	cases := []struct {
		name    string
		content string
		reason  string
	}{
		{name: "empty", content: "", reason: ReasonEmpty},
		{name: "test id", content: strings.ReplaceAll(valid, testID, "TEST-OTHER"), reason: ReasonMissingTestID},
		{name: "disclaimer", content: strings.ReplaceAll(valid, "THIS IS A TEST EMAIL", "NOTICE"), reason: ReasonMissingNotice},
		{name: "short", content: strings.Split(valid, "lorem")[0], reason: ReasonTooShort},
		{name: "from", content: strings.ReplaceAll(valid, "From:", "Sender:"), reason: ReasonMissingHeaders},
		{name: "to", content: strings.ReplaceAll(valid, "To:", "Recipient:"), reason: ReasonMissingHeaders},
		{name: "tag", content: strings.ReplaceAll(valid, "[TEST]", "(TEST)"), reason: ReasonMissingTag},
		{name: "formatting", content: strings.ReplaceAll(valid, "===========", "-=-=-=-=-=-"), reason: ReasonMissingFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, reason := Validate(tc.content, testID)
			require.False(t, ok)
			assert.Equal(t, tc.reason, reason)
		})
	}
}

func TestValidateOrder(t *testing.T) {
	// Missing both the test id and the disclaimer reports the test id first.
	ok, reason := Validate(strings.Repeat("word ", 60), testID)
	require.False(t, ok)
	assert.Equal(t, ReasonMissingTestID, reason)
}

func TestValidateWordBoundary(t *testing.T) {
	header := "From: a To: b [TEST] === THIS IS A TEST EMAIL " + testID
	words := len(strings.Fields(header))

	exact := header + strings.Repeat(" w", MinWords-words)
	ok, _ := Validate(exact, testID)
	assert.True(t, ok)

	short := header + strings.Repeat(" w", MinWords-words-1)
	ok, reason := Validate(short, testID)
	assert.False(t, ok)
	assert.Equal(t, ReasonTooShort, reason)
}

func TestCheckError(t *testing.T) {
	err := Check("", testID)
	require.Error(t, err)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, ReasonEmpty, verr.Reason)
	assert.Equal(t, "Generated content validation failed: Empty content", err.Error())
}
