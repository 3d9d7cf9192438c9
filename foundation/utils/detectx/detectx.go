// Package detectx finds links and phone numbers in free text.
//
// Package: detectx
// Title: Entity Detection
// Description: Links are found with mvdan.cc/xurls (relaxed mode, so bare
//              domains and e-mail addresses count); scheme-less matches get
//              http:// or mailto:. Phone numbers are digit runs validated with
//              github.com/nyaruka/phonenumbers against the region of the
//              detector. Nothing found yields an empty slice.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
package detectx

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"mvdan.cc/xurls/v2"

	"github.com/msto63/sparrow/foundation/core/i18n"
)

// DefaultRegion is used when a detector has no region
const DefaultRegion = "US"

// phonenumbers has no text matcher, so phonePattern only finds candidates
// and Parse decides
var (
	linkPattern  = xurls.Relaxed()
	phonePattern = regexp.MustCompile(`\+?\(?\d[\d\s().\-]{4,}\d`)
)

// Detector finds entities; the zero value detects phone numbers for
// DefaultRegion
type Detector struct {
	// Region is the ISO 3166 region used for numbers without a country code
	Region string
}

// New returns a detector for the region of ctx
func New(ctx i18n.Context) *Detector {
	return &Detector{Region: ctx.Region()}
}

func (d *Detector) region() string {
	if d == nil || d.Region == "" {
		return DefaultRegion
	}
	return strings.ToUpper(d.Region)
}

// Links returns every link in text, in order of appearance
func (d *Detector) Links(text string) []*url.URL {
	out := []*url.URL{}
	for _, raw := range linkPattern.FindAllString(text, -1) {
		if u, ok := toURL(raw); ok {
			out = append(out, u)
		}
	}
	return out
}

func toURL(raw string) (*url.URL, bool) {
	switch {
	case strings.Contains(raw, "://"), strings.HasPrefix(strings.ToLower(raw), "mailto:"):
	case strings.Contains(raw, "@") && !strings.Contains(raw, "/"):
		raw = "mailto:" + raw
	default:
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, false
	}
	return u, true
}

// PhoneNumbers returns every plausible phone number in text as written
func (d *Detector) PhoneNumbers(text string) []string {
	out := []string{}
	region := d.region()
	for _, candidate := range phonePattern.FindAllString(text, -1) {
		candidate = strings.TrimSpace(candidate)
		if _, ok := parsePhone(candidate, region); ok {
			out = append(out, candidate)
		}
	}
	return out
}

// Normalize returns number in E.164 form, e.g. "+14155552671"
func (d *Detector) Normalize(number string) (string, bool) {
	num, ok := parsePhone(number, d.region())
	if !ok {
		return "", false
	}
	return phonenumbers.Format(num, phonenumbers.E164), true
}

func parsePhone(s, region string) (*phonenumbers.PhoneNumber, bool) {
	num, err := phonenumbers.Parse(s, region)
	if err != nil || !phonenumbers.IsPossibleNumber(num) {
		return nil, false
	}
	return num, true
}

// DetectLinks finds links in text
func DetectLinks(text string) []*url.URL {
	return (&Detector{}).Links(text)
}

// DetectPhoneNumbers finds phone numbers in text for the device region
func DetectPhoneNumbers(text string) []string {
	return New(i18n.Current()).PhoneNumbers(text)
}
