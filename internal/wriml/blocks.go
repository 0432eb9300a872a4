package wriml

import (
	"strings"

	"github.com/glosskit/glosskit-cli/internal/core/domain"
)

// Block delimiter sentinels, matched against whole whitespace-trimmed
// lines. Blocks cannot nest.
const (
	// BlockOpen opens an example block.
	BlockOpen = "^ex"

	// BlockClose closes an example block.
	BlockClose = "_ex"
)

// Block is one delimited example unit: the verbatim lines between an
// open marker and the nearest following close marker, markers excluded.
type Block struct {
	// Lines are the verbatim payload lines.
	Lines []string

	// StartLine is the 1-based source line number of the open marker.
	StartLine int
}

// ExtractBlocks scans corpus text and delimits it into a sequence of
// non-overlapping blocks.
//
// A close marker outside a block is ignored. An open marker inside a
// block restarts accumulation at the new marker and drops the
// unterminated block with a malformed-block diagnostic
// (restart-and-discard). A trailing unterminated block is likewise
// dropped with a diagnostic. The result is empty when the input holds
// no recognisable blocks.
func ExtractBlocks(text string) ([]Block, []domain.Diagnostic) {
	var (
		blocks []Block
		diags  []domain.Diagnostic

		inBlock bool
		current Block
	)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lineNo := i + 1
		switch strings.TrimSpace(line) {
		case BlockOpen:
			if inBlock {
				diags = append(diags, domain.Diagnostic{
					Kind:    domain.DiagMalformedBlock,
					Line:    current.StartLine,
					Message: "block reopened before close marker; unterminated block dropped",
				})
			}
			inBlock = true
			current = Block{StartLine: lineNo}

		case BlockClose:
			if !inBlock {
				continue
			}
			blocks = append(blocks, current)
			inBlock = false
			current = Block{}

		default:
			if inBlock {
				current.Lines = append(current.Lines, line)
			}
		}
	}

	if inBlock {
		diags = append(diags, domain.Diagnostic{
			Kind:    domain.DiagMalformedBlock,
			Line:    current.StartLine,
			Message: "block not closed before end of input; dropped",
		})
	}

	return blocks, diags
}
