package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"net/url"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
)

// postingSelectors are tried in order to locate the job description block.
var postingSelectors = []string{
	"#job-description", "[class*=job-description]", "[class*=jobDescription]",
	"[data-testid=jobDescriptionText]", ".posting-page", ".description",
	"article", "main", "[role=main]", "body",
}

var removeSelectors = []string{
	"script", "style", "noscript", "iframe", "svg", "form",
	"header", "footer", "nav", "aside",
	".advertisement", ".ad", ".sidebar", ".cookie-banner",
	"[role=navigation]", "[role=banner]", "[role=contentinfo]",
}

var blankLinesRe = regexp.MustCompile(`\n{3,}`)

// FetchPosting downloads a job posting page and extracts its description as text.
func FetchPosting(ctx context.Context, rawURL string) (p *Posting, err error) {
	metrics.FetchRequests.Add(1)
	defer func() {
		if err != nil {
			metrics.FetchErrors.Add(1)
		}
	}()

	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("fetch posting: invalid url %q", rawURL)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	resp, err := fetchWithRetry(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch posting: %w", err)
	}
	defer resp.Body.Close()

	body, err := readResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("fetch posting: read body: %w", err)
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	var title, text string
	if mediaType == "text/plain" {
		text = strings.TrimSpace(string(body))
	} else {
		title, text, err = ExtractPostingText(body)
		if err != nil {
			return nil, fmt.Errorf("fetch posting: %w", err)
		}
	}
	if text == "" {
		return nil, errors.New("fetch posting: page has no readable text")
	}

	return &Posting{
		URL:   rawURL,
		Title: title,
		Text:  TruncateRunes(text, cfg.MaxContentChars, "..."),
	}, nil
}

// ExtractPostingText strips page chrome from an HTML document and converts the
// job description block to markdown.
func ExtractPostingText(body []byte) (title, text string, err error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", "", fmt.Errorf("parse html: %w", err)
	}

	title = strings.TrimSpace(doc.Find("title").First().Text())
	if og, ok := doc.Find("meta[property='og:title']").First().Attr("content"); ok && title == "" {
		title = strings.TrimSpace(og)
	}
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" && title == "" {
		title = h1
	}

	doc.Find(strings.Join(removeSelectors, ", ")).Remove()

	var sel *goquery.Selection
	for _, s := range postingSelectors {
		if found := doc.Find(s).First(); found.Length() > 0 && strings.TrimSpace(found.Text()) != "" {
			sel = found
			break
		}
	}
	if sel == nil {
		return title, "", nil
	}

	inner, err := sel.Html()
	if err == nil {
		if md, mdErr := htmltomarkdown.ConvertString(inner); mdErr == nil {
			text = md
		}
	}
	if text == "" {
		text = sel.Text()
	}
	text = blankLinesRe.ReplaceAllString(strings.TrimSpace(text), "\n\n")
	return title, text, nil
}
