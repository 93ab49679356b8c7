package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNameCollator(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"Fantasy", "fantasy", true},
		{"FANTASY", "fantasy", true},
		{"Science Fiction", "science fiction", true},
		{"Fantasy", "Fantasie", false},
		{"Café", "cafe", false},
		{"Café", "CAFÉ", true},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, NameCollator().CompareString(tt.a, tt.b) == 0)
		})
	}
}

func TestURLs(t *testing.T) {
	assert.Equal(t, "/genre/g1", (&Genre{ID: "g1"}).URL())
	assert.Equal(t, "/bookinstance/i1", (&BookInstance{ID: "i1"}).URL())
	assert.Equal(t, "/book/b1", (&Book{ID: "b1"}).URL())
}

func TestStatus(t *testing.T) {
	assert.Equal(t, []Status{StatusMaintenance, StatusAvailable, StatusLoaned, StatusReserved}, Statuses())
	assert.True(t, StatusLoaned.Known())
	assert.False(t, Status("Lost").Known())

	list := Statuses()
	list[0] = "mutated"
	assert.Equal(t, StatusMaintenance, Statuses()[0])
}

func TestApplyDefaults(t *testing.T) {
	bi := &BookInstance{}
	bi.ApplyDefaults()
	assert.Equal(t, StatusMaintenance, bi.Status)

	bi = &BookInstance{Status: "Lost"}
	bi.ApplyDefaults()
	assert.Equal(t, Status("Lost"), bi.Status)
}

func TestDueBackFormatting(t *testing.T) {
	tests := []struct {
		date      time.Time
		formatted string
	}{
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "Jan 1st, 2024"},
		{time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), "Jan 2nd, 2024"},
		{time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), "Mar 3rd, 2024"},
		{time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC), "Jun 11th, 2024"},
		{time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC), "Jun 13th, 2024"},
		{time.Date(2024, 12, 22, 0, 0, 0, 0, time.UTC), "Dec 22nd, 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.formatted, func(t *testing.T) {
			bi := &BookInstance{DueBack: &tt.date}
			assert.Equal(t, tt.formatted, bi.DueBackFormatted())
			assert.Equal(t, tt.date.Format(time.DateOnly), bi.DueBackISO())
		})
	}

	empty := &BookInstance{}
	assert.Empty(t, empty.DueBackFormatted())
	assert.Empty(t, empty.DueBackISO())
}

func TestBookFieldAndProject(t *testing.T) {
	b := &Book{ID: "b1", Title: "Dune", Author: "Herbert", Summary: "Spice", ISBN: "1", Genre: []string{"g1", "g2"}}

	assert.Equal(t, []string{"g1", "g2"}, b.Field("genre"))
	assert.Nil(t, b.Field("unknown"))

	b.Project([]string{"title", "summary"})
	assert.Equal(t, &Book{ID: "b1", Title: "Dune", Summary: "Spice"}, b)
}
