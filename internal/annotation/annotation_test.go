package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractNoTags(t *testing.T) {
	a := Extract("plain text, no tags")

	assert.Nil(t, a.TargetProduct)
	assert.Equal(t, "General", a.Interest)
	assert.Equal(t, "plain text, no tags", a.CleanMessage)
}

func TestExtractEmptyMessage(t *testing.T) {
	a := Extract("")

	assert.Nil(t, a.TargetProduct)
	assert.Equal(t, DefaultInterest, a.Interest)
	assert.Equal(t, "", a.CleanMessage)
}

func TestExtractBothTags(t *testing.T) {
	a := Extract("[Product: DRX-900] - Need urgent quote [Interest: Imaging]")

	if assert.NotNil(t, a.TargetProduct) {
		assert.Equal(t, "DRX-900", *a.TargetProduct)
	}
	assert.Equal(t, "Imaging", a.Interest)
	assert.Equal(t, "Need urgent quote", a.CleanMessage)
}

func TestExtractTagOrderIndependent(t *testing.T) {
	a := Extract("[Interest: Imaging] [Product: X] body")
	b := Extract("[Product: X] [Interest: Imaging] body")

	if assert.NotNil(t, a.TargetProduct) && assert.NotNil(t, b.TargetProduct) {
		assert.Equal(t, "X", *a.TargetProduct)
		assert.Equal(t, "X", *b.TargetProduct)
	}
	assert.Equal(t, "Imaging", a.Interest)
	assert.Equal(t, "Imaging", b.Interest)
	assert.Equal(t, "body", a.CleanMessage)
	assert.Equal(t, "body", b.CleanMessage)
}

func TestExtractStripsLeadingSeparator(t *testing.T) {
	a := Extract("[Product: Y] - Customer wants a demo")

	assert.Equal(t, "Customer wants a demo", a.CleanMessage)
}

func TestExtractFirstTagWins(t *testing.T) {
	a := Extract("[Product: First] text [Product: Second]")

	if assert.NotNil(t, a.TargetProduct) {
		assert.Equal(t, "First", *a.TargetProduct)
	}
	assert.Equal(t, "text", a.CleanMessage)
}

func TestExtractRemovesUnknownTags(t *testing.T) {
	// Every bracketed span is stripped from the clean message, not only the
	// recognized labels.
	a := Extract("[Urgency: High] please call [Product: Z]")

	if assert.NotNil(t, a.TargetProduct) {
		assert.Equal(t, "Z", *a.TargetProduct)
	}
	assert.Equal(t, DefaultInterest, a.Interest)
	assert.Equal(t, "please call", a.CleanMessage)
}

func TestExtractLabelCaseSensitive(t *testing.T) {
	a := Extract("[product: lower] body")

	assert.Nil(t, a.TargetProduct)
	// The span is still stripped from the clean message.
	assert.Equal(t, "body", a.CleanMessage)
}

func TestExtractUnterminatedBracketLeftInPlace(t *testing.T) {
	a := Extract("[Product: broken no close")

	assert.Nil(t, a.TargetProduct)
	assert.Equal(t, "[Product: broken no close", a.CleanMessage)
}

func TestExtractTrimsTagValue(t *testing.T) {
	a := Extract("[Product:   VS-2000  ] hi")

	if assert.NotNil(t, a.TargetProduct) {
		assert.Equal(t, "VS-2000", *a.TargetProduct)
	}
}

func TestExtractDeterministic(t *testing.T) {
	msg := "[Product: DRX-900] - quote please [Interest: Imaging]"
	a := Extract(msg)
	b := Extract(msg)

	assert.Equal(t, a, b)
}

func TestExtractOnCleanedMessageYieldsDefaults(t *testing.T) {
	first := Extract("[Product: X] - hello [Interest: Y]")
	second := Extract(first.CleanMessage)

	assert.Nil(t, second.TargetProduct)
	assert.Equal(t, DefaultInterest, second.Interest)
	assert.Equal(t, first.CleanMessage, second.CleanMessage)
}

func TestMatchTagUnion(t *testing.T) {
	m := MatchProduct("nothing here")
	assert.False(t, m.Matched)
	assert.Equal(t, "", m.Value)

	m = MatchInterest("[Interest: Surgical]")
	assert.True(t, m.Matched)
	assert.Equal(t, "Surgical", m.Value)
}
