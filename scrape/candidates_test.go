package scrape

import (
	"net/url"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDoc(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := ParseDocument(markup)
	require.NoError(t, err)
	return doc
}

func testBase(t *testing.T) *url.URL {
	t.Helper()
	base, err := url.Parse("https://www.example.com")
	require.NoError(t, err)
	return base
}

// TestCandidates_DedupesPreservingOrder verifies duplicate hrefs appear once,
// in first-occurrence order
func TestCandidates_DedupesPreservingOrder(t *testing.T) {
	markup := `<html><body>
		<a href="/news/alpha">Alpha</a>
		<a href="/news/beta">Beta</a>
		<a href="/news/alpha">Alpha again</a>
		<a href="/news/gamma">Gamma</a>
	</body></html>`

	urls := Candidates(mustDoc(t, markup), testBase(t), "/news/", 15)

	assert.Equal(t, []string{
		"https://www.example.com/news/alpha",
		"https://www.example.com/news/beta",
		"https://www.example.com/news/gamma",
	}, urls)
}

// TestCandidates_SkipsQueryAndFragmentVariants verifies links with query
// strings or fragments are not treated as candidates
func TestCandidates_SkipsQueryAndFragmentVariants(t *testing.T) {
	markup := `<html><body>
		<a href="/news/alpha?page=2">paged</a>
		<a href="/news/alpha#comments">anchored</a>
		<a href="/news/alpha">plain</a>
	</body></html>`

	urls := Candidates(mustDoc(t, markup), testBase(t), "/news/", 15)

	assert.Equal(t, []string{"https://www.example.com/news/alpha"}, urls)
}

// TestCandidates_IgnoresOtherPaths verifies only the article section
// qualifies
func TestCandidates_IgnoresOtherPaths(t *testing.T) {
	markup := `<html><body>
		<a href="/about">About</a>
		<a href="/news/alpha">Alpha</a>
		<a href="/events/gala">Gala</a>
		<a href="/newsletter">Not the news section</a>
	</body></html>`

	urls := Candidates(mustDoc(t, markup), testBase(t), "/news/", 15)

	assert.Equal(t, []string{"https://www.example.com/news/alpha"}, urls)
}

// TestCandidates_ResolvesAbsoluteSameHostLinks verifies absolute links on
// the listing page's own host are accepted, other hosts rejected
func TestCandidates_ResolvesAbsoluteSameHostLinks(t *testing.T) {
	markup := `<html><body>
		<a href="https://www.example.com/news/alpha">Alpha</a>
		<a href="https://elsewhere.org/news/beta">Beta</a>
	</body></html>`

	urls := Candidates(mustDoc(t, markup), testBase(t), "/news/", 15)

	assert.Equal(t, []string{"https://www.example.com/news/alpha"}, urls)
}

// TestCandidates_CapBoundsResults verifies the candidate cap is honored
func TestCandidates_CapBoundsResults(t *testing.T) {
	markup := `<html><body>
		<a href="/news/one">1</a>
		<a href="/news/two">2</a>
		<a href="/news/three">3</a>
		<a href="/news/four">4</a>
	</body></html>`

	urls := Candidates(mustDoc(t, markup), testBase(t), "/news/", 2)

	assert.Equal(t, []string{
		"https://www.example.com/news/one",
		"https://www.example.com/news/two",
	}, urls)
}

// TestCandidates_ZeroCap verifies a non-positive cap yields no candidates
// at all
func TestCandidates_ZeroCap(t *testing.T) {
	markup := `<html><body><a href="/news/alpha">Alpha</a></body></html>`

	assert.Empty(t, Candidates(mustDoc(t, markup), testBase(t), "/news/", 0))
	assert.Empty(t, Candidates(mustDoc(t, markup), testBase(t), "/news/", -1))
}

// TestCandidates_NoMatches verifies a listing with no article links yields
// an empty result
func TestCandidates_NoMatches(t *testing.T) {
	markup := `<html><body><p>Nothing linked here.</p></body></html>`

	urls := Candidates(mustDoc(t, markup), testBase(t), "/news/", 15)

	assert.Empty(t, urls)
}
