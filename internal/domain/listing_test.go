package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestDesignerRecord_Conversion(t *testing.T) {
	d := SampleDesigners()[2]
	rec := NewDesignerRecord(d)
	assert.JSONEq(t, `["Minimalist","Wellness","Natural Light"]`, string(rec.Tags))
	assert.Equal(t, "priya.sharma@example.com", rec.ContactEmail)

	back := rec.Designer()
	assert.Equal(t, d.Listing, back.Listing)
	assert.Equal(t, d.Portfolio, back.Portfolio)
	assert.True(t, back.IsActive)
}

func TestDesignerRecord_BadJSONReadsEmpty(t *testing.T) {
	rec := DesignerRecord{ID: 9, Tags: datatypes.JSON(`{"not":"a list"}`)}
	d := rec.Designer()
	assert.Equal(t, []string{}, d.Tags)
	assert.Equal(t, []string{}, d.Portfolio)
}

func TestPriceValue(t *testing.T) {
	n, ok := PriceValue("₹2,500")
	assert.True(t, ok)
	assert.Equal(t, 2500, n)

	_, ok = PriceValue("on request")
	assert.False(t, ok)
}

func TestCountry(t *testing.T) {
	assert.Equal(t, "India", Country("Mumbai, India"))
	assert.Equal(t, "Remote", Country(" Remote "))
}

func TestSampleListings(t *testing.T) {
	listings := SampleListings()
	assert.Len(t, listings, 5)
	for i, l := range listings {
		assert.Equal(t, int64(i+1), l.ID)
	}
	// callers get independent copies
	listings[0].Tags[0] = "changed"
	assert.Equal(t, "Modern", SampleListings()[0].Tags[0])
}
