package dto

// PublishEmbedPassageMessage is the payload queued for the embedding worker.
// One message per chunk; the worker embeds the content and stores the passage.
type PublishEmbedPassageMessage struct {
	Source     string `json:"source"`
	ChunkIndex int    `json:"chunkIndex"`
	Content    string `json:"content"`
}
