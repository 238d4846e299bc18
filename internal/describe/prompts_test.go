package describe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calegrey/relister/internal/describe"
	domain "github.com/calegrey/relister/pkg/types"
)

func TestBuildPrompt_AllFields(t *testing.T) {
	t.Parallel()

	meta := &domain.ProductMetadata{
		Type:            domain.ProductBook,
		Title:           "Statistical Mechanics",
		Authors:         []string{"Richard P. Feynman"},
		Publisher:       "Westview Press",
		PublicationYear: 1998,
		Categories:      []string{"Science", "Physics"},
	}

	prompt, err := describe.BuildPrompt(meta, nil, "Good", 12.99)
	require.NoError(t, err)

	assert.Contains(t, prompt, "Item type: book")
	assert.Contains(t, prompt, "Title: Statistical Mechanics")
	assert.Contains(t, prompt, "Author(s): Richard P. Feynman")
	assert.Contains(t, prompt, "Publisher: Westview Press")
	assert.Contains(t, prompt, "Publication year: 1998")
	assert.Contains(t, prompt, "Categories: Science, Physics")
	assert.Contains(t, prompt, "Condition: Good")
	assert.Contains(t, prompt, "Asking price: 12.99")
	// No addon means the issue fields stay Unknown.
	assert.Contains(t, prompt, "Issue number: Unknown")
	assert.Contains(t, prompt, "Issue date: Unknown")
}

func TestBuildPrompt_MissingFieldsRenderUnknown(t *testing.T) {
	t.Parallel()

	prompt, err := describe.BuildPrompt(nil, nil, "", 0)
	require.NoError(t, err)

	assert.Contains(t, prompt, "Item type: Unknown")
	assert.Contains(t, prompt, "Title: Unknown")
	assert.Contains(t, prompt, "Author(s): Unknown")
	assert.Contains(t, prompt, "Publisher: Unknown")
	assert.Contains(t, prompt, "Publication year: Unknown")
	assert.Contains(t, prompt, "Condition: Unknown")
	assert.Contains(t, prompt, "Asking price: Unknown")
}

func TestBuildPrompt_MagazineAddon(t *testing.T) {
	t.Parallel()

	meta := &domain.ProductMetadata{
		Type:  domain.ProductMagazine,
		Title: "TIME Magazine",
	}
	addon := &domain.AddonInference{
		Issue: "12",
		Month: "January",
		Year:  2024,
	}

	prompt, err := describe.BuildPrompt(meta, addon, "Used", 5.99)
	require.NoError(t, err)

	assert.Contains(t, prompt, "Issue number: 12")
	assert.Contains(t, prompt, "Issue date: January 2024")
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	t.Parallel()

	meta := &domain.ProductMetadata{Type: domain.ProductBook, Title: "X"}

	a, err := describe.BuildPrompt(meta, nil, "Good", 9.99)
	require.NoError(t, err)
	b, err := describe.BuildPrompt(meta, nil, "Good", 9.99)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
