// Package audio feeds raw audio from an io.Reader into a send function as
// fixed-size chunks, with optional pacing for real-time playback
// simulation.
package audio

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/harunnryd/speechline-go/pkg/errorsx"
)

const DefaultChunkSize = 8192

// SendFunc delivers one chunk of audio. A typical value is live.Client.Send.
type SendFunc func([]byte) error

type PumpOptions struct {
	// ChunkSize is the read size per send. Zero means DefaultChunkSize.
	ChunkSize int
	// Interval inserts a sleep between chunks. Zero sends as fast as the
	// reader and the send function allow.
	Interval time.Duration
}

// Pump reads r until EOF, forwarding each chunk through send. It returns
// nil on EOF, a reasoned audio_read error if the reader fails, or the send
// function's error unchanged. Cancelling ctx stops the pump between chunks.
func Pump(ctx context.Context, r io.Reader, send SendFunc, opts PumpOptions) error {
	size := opts.ChunkSize
	if size <= 0 {
		size = DefaultChunkSize
	}

	var ticker *time.Ticker
	if opts.Interval > 0 {
		ticker = time.NewTicker(opts.Interval)
		defer ticker.Stop()
	}

	buf := make([]byte, size)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := r.Read(buf)
		if n > 0 {
			if serr := send(buf[:n]); serr != nil {
				return serr
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return errorsx.Wrap(err, errorsx.ReasonAudioRead)
		}

		if ticker != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		}
	}
}
