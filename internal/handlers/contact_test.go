package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/annotation"
)

func TestComposeMessageEmbedsTags(t *testing.T) {
	msg := composeMessage(ContactRequest{
		Message:  "Need urgent quote",
		Product:  "DRX-900",
		Interest: "Imaging",
	})

	assert.Equal(t, "[Product: DRX-900][Interest: Imaging] - Need urgent quote", msg)

	// Round trip through the extractor recovers exactly what was embedded.
	a := annotation.Extract(msg)
	if assert.NotNil(t, a.TargetProduct) {
		assert.Equal(t, "DRX-900", *a.TargetProduct)
	}
	assert.Equal(t, "Imaging", a.Interest)
	assert.Equal(t, "Need urgent quote", a.CleanMessage)
}

func TestComposeMessageProductOnly(t *testing.T) {
	msg := composeMessage(ContactRequest{
		Message: "Customer wants a demo",
		Product: "VS-2000",
	})

	a := annotation.Extract(msg)
	if assert.NotNil(t, a.TargetProduct) {
		assert.Equal(t, "VS-2000", *a.TargetProduct)
	}
	assert.Equal(t, annotation.DefaultInterest, a.Interest)
	assert.Equal(t, "Customer wants a demo", a.CleanMessage)
}

func TestComposeMessageNoSelections(t *testing.T) {
	msg := composeMessage(ContactRequest{Message: "plain text, no tags"})

	assert.Equal(t, "plain text, no tags", msg)

	a := annotation.Extract(msg)
	assert.Nil(t, a.TargetProduct)
	assert.Equal(t, "plain text, no tags", a.CleanMessage)
}

func TestComposeMessageTrimsSelections(t *testing.T) {
	msg := composeMessage(ContactRequest{
		Message:  "hello",
		Product:  "  DRX-900  ",
		Interest: "   ",
	})

	assert.Equal(t, "[Product: DRX-900] - hello", msg)
}
