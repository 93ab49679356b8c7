package validation

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/catalog/internal/domain"
)

func TestGenre(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     string
		failures []string
	}{
		{"valid", "Fantasy", "Fantasy", nil},
		{"trimmed", "  Poetry  ", "Poetry", nil},
		{"escaped", "Sci<Fi>", "Sci&lt;Fi&gt;", nil},
		{"too short after trim", "  ab  ", "ab", []string{MsgGenreName}},
		{"empty", "", "", []string{MsgGenreName}},
		{"length counts runes", "Été", "Été", nil},
		{"length measured before escape", "a&", "a&amp;", []string{MsgGenreName}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, failures := Genre(url.Values{"name": {tt.raw}})
			assert.Equal(t, tt.want, in.Name)
			if tt.failures == nil {
				assert.True(t, failures.Empty())
				return
			}
			assert.Equal(t, tt.failures, failures.Messages())
			assert.Equal(t, "name", failures[0].Field)
		})
	}
}

func TestBookInstanceAccumulatesFailures(t *testing.T) {
	in, failures := BookInstance(url.Values{
		"book":     {" "},
		"imprint":  {""},
		"status":   {"Loaned"},
		"due_back": {"2024-02-30"},
	})

	assert.Equal(t, []string{MsgBook, MsgImprint, MsgInvalidDate}, failures.Messages())
	assert.Equal(t, "Loaned", in.Status)
	assert.Nil(t, in.DueBack)
	assert.Equal(t, "2024-02-30", in.DueBackText)
}

func TestBookInstanceOptionalDate(t *testing.T) {
	form := url.Values{"book": {"b1"}, "imprint": {"Ace"}, "status": {""}}

	in, failures := BookInstance(form)
	require.True(t, failures.Empty())
	assert.Nil(t, in.DueBack)
	assert.Nil(t, in.BookInstance().DueBack)

	form.Set("due_back", "2024-06-01")
	in, failures = BookInstance(form)
	require.True(t, failures.Empty())
	require.NotNil(t, in.DueBack)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), *in.DueBack)
	assert.Equal(t, "2024-06-01", in.DueBackText)
}

func TestParseISODate(t *testing.T) {
	tests := []struct {
		raw string
		ok  bool
	}{
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"2024-02-30", false},
		{"2024-06-01T10:30", true},
		{"2024-06-01T10:30:15", true},
		{"2024-06-01T10:30:15+02:00", true},
		{"2024-06-01T10:30:15.123Z", true},
		{"2024-06-01T10:30Z", true},
		{"2024-06-01T10:30:15+0200", true},
		{"2024-06-01T10:30:15+02", true},
		{"2024-06", true},
		{"2024", true},
		{"20240601", true},
		{"20240601T103015", true},
		{"20240601T103015Z", true},
		{"20240601T103015+0200", true},
		{"2024-13", false},
		{"20240230", false},
		{"2024-W23", false},
		{"01/06/2024", false},
		{"tomorrow", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, ok := ParseISODate(tt.raw)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestPipelineIsDeterministic(t *testing.T) {
	form := url.Values{"book": {" <b> "}, "imprint": {"x/y"}, "status": {"'s'"}, "due_back": {"nope"}}

	first, f1 := BookInstance(form)
	second, f2 := BookInstance(form)
	assert.Equal(t, first, second)
	assert.Equal(t, f1, f2)
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "&amp;&quot;&#x27;&lt;&gt;&#x2F;&#x5C;&#96;", Escape("&\"'<>/\\`"))
	assert.Equal(t, "plain", Escape("plain"))
}

func TestBookInstanceEntity(t *testing.T) {
	in := BookInstanceInput{Book: "b1", Imprint: "Ace", Status: "Reserved"}
	assert.Equal(t, &domain.BookInstance{Book: "b1", Imprint: "Ace", Status: domain.StatusReserved}, in.BookInstance())
}
