package ports

// Settings exposes the user preferences that can change while running.
type Settings interface {
	// SkipDataAndType returns whether cells with data or a type script must
	// be excluded from balance and spending.
	SkipDataAndType() bool
}
