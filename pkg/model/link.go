package model

// Provider identifies which handler knows how to read a feed
type Provider string

const (
	ProviderRSS      = Provider("rss")
	ProviderMixcloud = Provider("mixcloud")
)

// Extension of the audio container each provider produces
const (
	ExtensionMP3 = "mp3"
	ExtensionM4A = "m4a"
)
