package transcriber

import "context"

// Source is the audio payload for one transcription call: either inline
// bytes or a reference to a previously uploaded remote file, never both.
type Source struct {
	Data      []byte
	RemoteURI string
	MIMEType  string
}

// DeltaFunc receives each text fragment as it arrives from the streamed
// response, before the concatenated whole is returned.
type DeltaFunc func(delta string)

// Transcriber converts audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, src Source, onDelta DeltaFunc) (string, error)
}
