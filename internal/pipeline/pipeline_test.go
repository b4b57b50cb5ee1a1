package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/livp123/urlp/internal/urlview"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "https://example.com", Normalize("example.com", "https"))
	assert.Equal(t, "http://example.com", Normalize("http://example.com", "https"))
	assert.Equal(t, "example.com", Normalize("example.com", ""))
}

func TestProcessPreservesOrder(t *testing.T) {
	inputs := make([]string, 100)
	for i := range inputs {
		inputs[i] = "https://host" + strings.Repeat("x", i%7) + ".example.com/p" + string(rune('a'+i%26))
	}

	p := New(Options{Workers: 8})
	records, err := p.Process(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, records, len(inputs))
	for i, rec := range records {
		assert.Equal(t, inputs[i], rec.URL)
	}
}

func TestProcessSkipsMalformed(t *testing.T) {
	inputs := []string{
		"https://good.example.com/",
		"https://bad.example.com:99999/",
		"https://also-good.example.com/",
	}

	p := New(Options{Workers: 2})
	records, err := p.Process(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "good.example.com", records[0].Hostname)
	assert.Equal(t, "also-good.example.com", records[1].Hostname)
}

func TestProcessStrict(t *testing.T) {
	inputs := []string{
		"https://good.example.com/",
		"https://bad.example.com:99999/",
	}

	p := New(Options{Workers: 2, Strict: true})
	_, err := p.Process(context.Background(), inputs)
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "https://bad.example.com:99999/", parseErr.Input)
	assert.ErrorIs(t, err, urlview.ErrInvalidPort)
}

func TestProcessDefaultScheme(t *testing.T) {
	p := New(Options{Workers: 1, DefaultScheme: "https"})
	records, err := p.Process(context.Background(), []string{"example.com/path"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "https", records[0].Scheme)
	assert.Equal(t, "https://example.com/path", records[0].URL)
}

func TestProcessSortUnique(t *testing.T) {
	inputs := []string{
		"https://b.example.com/",
		"https://a.example.com/",
		"https://b.example.com/",
		"https://a.example.com/",
	}

	p := New(Options{Workers: 4, Sort: true, Unique: true})
	records, err := p.Process(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "https://a.example.com/", records[0].URL)
	assert.Equal(t, "https://b.example.com/", records[1].URL)
}

func TestProcessFilter(t *testing.T) {
	f, err := NewFilter(`Domain == "example.com" && HasPort()`)
	require.NoError(t, err)

	inputs := []string{
		"https://www.example.com:8080/",
		"https://www.example.com/",
		"https://www.other.org:8080/",
	}

	p := New(Options{Workers: 2, Filter: f})
	records, err := p.Process(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "https://www.example.com:8080/", records[0].URL)
}

func TestProcessCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(Options{Workers: 2})
	_, err := p.Process(ctx, []string{"https://example.com/"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessOne(t *testing.T) {
	p := New(Options{DefaultScheme: "https"})

	rec, ok, err := p.ProcessOne(context.Background(), "example.com")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "example.com", rec.Hostname)

	_, _, err = p.ProcessOne(context.Background(), "http://:80/")
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestNewFilterRejectsBadExpression(t *testing.T) {
	_, err := NewFilter(`Domain ==`)
	assert.Error(t, err)

	_, err = NewFilter(`Bogus == "x"`)
	assert.Error(t, err)
}

func TestReadLines(t *testing.T) {
	input := "https://a.example.com/\n\n# comment\n  https://b.example.com/  \n"
	lines, err := ReadLines(strings.NewReader(input), false)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example.com/", "https://b.example.com/"}, lines)
}

func TestDedupAdjacent(t *testing.T) {
	p := New(Options{Workers: 1, Unique: true})
	records, err := p.Process(context.Background(), []string{
		"https://a.example.com/",
		"https://a.example.com/",
		"https://b.example.com/",
		"https://a.example.com/",
	})
	require.NoError(t, err)
	// Without sorting only adjacent duplicates collapse
	require.Len(t, records, 3)
	assert.Equal(t, "https://a.example.com/", records[2].URL)
}

func BenchmarkProcess(b *testing.B) {
	inputs := make([]string, 1000)
	for i := range inputs {
		inputs[i] = "https://user@api.example.com:8080/v1/users?limit=10#results"
	}
	p := New(Options{})
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Process(ctx, inputs); err != nil {
			b.Fatal(err)
		}
	}
}
