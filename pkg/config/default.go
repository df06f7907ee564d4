package config

import "time"

// Keys understood by Load. Each is read from the environment as
// ARCHIVE_STREAM_<KEY in upper case>.
const (
	KeyTitle           = "title"
	KeyAudioPlayer     = "audio_player"
	KeyAudioDelay      = "audio_delay"
	KeyKillAudioOnExit = "kill_audio_on_exit"
	KeyDefaultFPS      = "default_fps"
	KeyFontPath        = "font_path"
	KeyFontSize        = "font_size"
	KeyLogLevel        = "log_level"
	KeyLogJSON         = "log_json"
	KeyShowQR          = "show_qr"
	KeyPresignExpiry   = "presign_expiry"
	KeyPerfLogInterval = "perf_log_interval"
)

// Field is a default value plus what it is for.
type Field struct {
	Value       any
	Description string
}

// Default holds the factory value of every key.
var Default = map[string]Field{
	KeyTitle:           {"Streaming Video Player", "Window title"},
	KeyAudioPlayer:     {"ffplay", "Audio player binary, looked up on PATH"},
	KeyAudioDelay:      {500 * time.Millisecond, "Time given to the audio player to buffer before video starts"},
	KeyKillAudioOnExit: {false, "Kill the audio player when the window closes instead of leaving it to finish"},
	KeyDefaultFPS:      {60, "Frame rate used when the stream does not report one"},
	KeyFontPath:        {"", "TTF font for the button label, empty to search system fonts"},
	KeyFontSize:        {20, "Button label point size"},
	KeyLogLevel:        {"info", "Log level: trace, debug, info, warn, error"},
	KeyLogJSON:         {false, "Log as JSON instead of text"},
	KeyShowQR:          {false, "Print a QR code of the resolved stream URL"},
	KeyPresignExpiry:   {time.Hour, "Lifetime of presigned s3:// URLs"},
	KeyPerfLogInterval: {5 * time.Second, "How often playback performance is logged, 0 to disable"},
}
