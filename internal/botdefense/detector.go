package botdefense

import (
	"net/http"
	"strings"
)

// scraper and script user-agent fragments, matched case-insensitively
var botPatterns = []string{
	"bot",
	"crawler",
	"spider",
	"scraper",
	"python-requests",
	"python-urllib",
	"node-fetch",
	"axios",
	"libwww",
	"apache-httpclient",
	"okhttp",
	"headless",
	"phantomjs",
	"selenium",
	"puppeteer",
	"playwright",
	"scrapy",
	"httrack",
	"mass-downloader",
}

var browserIndicators = []string{
	"mozilla",
	"chrome",
	"safari",
	"firefox",
	"edge",
	"opera",
}

var suspiciousPathPatterns = []string{
	".php",
	".asp",
	".aspx",
	".jsp",
	".cgi",
	"..%2f",
	"../",
	"%00",
	"<script",
	"union+select",
	"' or '",
}

// contains detected bot indicators
type BotSignals struct {
	EmptyUserAgent  bool
	BotPatternMatch string
	MissingHeaders  []string
	Score           int
}

// scores a request for bot indicators, higher is more bot-like
func DetectBot(r *http.Request) *BotSignals {
	signals := &BotSignals{}
	userAgent := strings.ToLower(r.Header.Get("User-Agent"))

	if userAgent == "" {
		signals.EmptyUserAgent = true
		signals.Score += 50
	}

	for _, pattern := range botPatterns {
		if strings.Contains(userAgent, pattern) {
			signals.BotPatternMatch = pattern
			signals.Score += 40
			break
		}
	}

	for _, header := range []string{"Accept", "Accept-Language", "Accept-Encoding"} {
		if r.Header.Get(header) == "" {
			signals.MissingHeaders = append(signals.MissingHeaders, header)
			signals.Score += 10
		}
	}

	if hasBrowserIndicator(userAgent) && len(signals.MissingHeaders) == 0 {
		signals.Score = max(0, signals.Score-20)
	}

	return signals
}

func hasBrowserIndicator(userAgentLower string) bool {
	for _, indicator := range browserIndicators {
		if strings.Contains(userAgentLower, indicator) {
			return true
		}
	}

	return false
}

// checks if the request path looks like probing
func IsSuspiciousPath(path string) bool {
	pathLower := strings.ToLower(path)

	for _, pattern := range suspiciousPathPatterns {
		if strings.Contains(pathLower, pattern) {
			return true
		}
	}

	return false
}
