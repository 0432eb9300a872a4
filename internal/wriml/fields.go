package wriml

import (
	"regexp"
	"strings"

	"github.com/glosskit/glosskit-cli/internal/core/domain"
)

// Recognised tag mnemonics.
const (
	tagContext     = "cx"
	tagJudgment    = "aj"
	tagText        = "tx"
	tagMorphemes   = "mb"
	tagGloss       = "gl"
	tagTranslation = "ft"
	tagLiteral     = "lt"
	tagID          = "id"
	tagRef         = "ref"
)

// tagPattern builds the capturing rule for one mnemonic: an open marker,
// an optional payload, and the close marker, each delimited by
// whitespace or a line end. Group 1 captures the payload.
func tagPattern(mn string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[ \t])\^` + mn + `(?:[ \t]+(.*?))?[ \t]+_` + mn + `(?:[ \t]|$)`)
}

// contextPattern additionally captures an optional key="value" attribute
// between the mnemonic and the payload. Group 1 is the attribute key,
// group 2 its value, group 3 the payload.
var contextPattern = regexp.MustCompile(`(?:^|[ \t])\^` + tagContext +
	`(?:[ \t]+([A-Za-z]+)="([^"]*)")?(?:[ \t]+(.*?))?[ \t]+_` + tagContext + `(?:[ \t]|$)`)

// tagPatterns maps each plain mnemonic to its capturing rule. The
// context tag is handled separately because of its attribute.
var tagPatterns = map[string]*regexp.Regexp{
	tagJudgment:    tagPattern(tagJudgment),
	tagText:        tagPattern(tagText),
	tagMorphemes:   tagPattern(tagMorphemes),
	tagGloss:       tagPattern(tagGloss),
	tagTranslation: tagPattern(tagTranslation),
	tagLiteral:     tagPattern(tagLiteral),
	tagID:          tagPattern(tagID),
	tagRef:         tagPattern(tagRef),
}

// extractTag returns the trimmed payload of the first line matching the
// mnemonic's rule. Later matches are ignored (first occurrence wins,
// never last-wins or merge). Absence is not an error.
func extractTag(lines []string, mn string) (string, bool) {
	re := tagPatterns[mn]
	for _, line := range lines {
		if m := re.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

// extractContext returns the context payload and, when the inline
// attribute is present and its key is "type", the attribute value.
// Attributes with any other key are ignored.
func extractContext(lines []string) (payload string, contextType *string, found bool) {
	for _, line := range lines {
		m := contextPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		payload = strings.TrimSpace(m[3])
		if m[1] == "type" {
			v := m[2]
			contextType = &v
		}
		return payload, contextType, true
	}
	return "", nil, false
}

// extractIdentifier scans for the primary ^id tag and the legacy ^ref
// tag, which are interchangeable. The first line carrying either wins.
func extractIdentifier(lines []string) (string, bool) {
	idRe, refRe := tagPatterns[tagID], tagPatterns[tagRef]
	for _, line := range lines {
		if m := idRe.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1]), true
		}
		if m := refRe.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

// ParseBlock extracts one record from a block's line sequence.
//
// Every tag is optional at this stage: an absent tag contributes an
// empty or absent value, never an error. ParseBlock is pure and
// side-effect-free apart from the freshly assigned Record.ID; two calls
// on identical input yield field-equal records.
func ParseBlock(b Block) domain.Record {
	rec := domain.Record{
		ID:       newRecordID(),
		RawLines: append([]string(nil), b.Lines...),
	}

	rec.Context, rec.ContextType, _ = extractContext(b.Lines)
	rec.Judgment, _ = extractTag(b.Lines, tagJudgment)
	rec.Text, _ = extractTag(b.Lines, tagText)
	rec.Morphemes, _ = extractTag(b.Lines, tagMorphemes)
	rec.Gloss, _ = extractTag(b.Lines, tagGloss)
	rec.Translation, _ = extractTag(b.Lines, tagTranslation)
	rec.Literal, _ = extractTag(b.Lines, tagLiteral)
	rec.Ref, _ = extractIdentifier(b.Lines)

	return rec
}
