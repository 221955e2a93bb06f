package ingest

// Chunking defaults mirror the knowledge-base ingestion settings: documents
// use tighter chunks than crawled pages, both with overlap to preserve
// context at boundaries.
const (
	DocumentChunkSize    = 700
	DocumentChunkOverlap = 150
	WebChunkSize         = 1000
	WebChunkOverlap      = 200
)

// SplitText splits a long string into chunks of approximately 'chunkSize'
// characters with 'overlap' characters carried between neighbours. This is
// a character-based splitter; rune-safe but not tokenizer-aware.
func SplitText(text string, chunkSize int, overlap int) []string {
	if len(text) <= chunkSize {
		return []string{text}
	}

	var chunks []string
	runes := []rune(text)
	totalLen := len(runes)

	step := chunkSize - overlap
	if step <= 0 {
		step = chunkSize // fallback if overlap >= chunkSize
	}

	for i := 0; i < totalLen; i += step {
		end := i + chunkSize
		if end > totalLen {
			end = totalLen
		}

		chunks = append(chunks, string(runes[i:end]))

		if end == totalLen {
			break
		}
	}

	return chunks
}
