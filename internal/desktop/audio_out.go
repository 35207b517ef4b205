//go:build !android

package desktop

import (
	"fmt"

	"github.com/hajimehoshi/oto/v2"
	"go.uber.org/zap"

	"f1demo/internal/audio"
)

// audioOut plays an EngineStream on the default output device.
type audioOut struct {
	ctx    *oto.Context
	player oto.Player
}

// startAudio opens the device and starts playback once the context is
// ready. The returned audioOut is usable immediately; playback begins in
// the background.
func startAudio(stream *audio.EngineStream, volume float64, log *zap.Logger) (*audioOut, error) {
	ctx, ready, err := oto.NewContext(audio.SampleRate, audio.ChannelCount, audio.BitDepth)
	if err != nil {
		return nil, fmt.Errorf("audio context: %w", err)
	}
	out := &audioOut{ctx: ctx, player: ctx.NewPlayer(stream)}
	out.player.SetVolume(volume)
	go func() {
		<-ready
		out.player.Play()
		log.Debug("audio started", zap.Float64("volume", volume))
	}()
	return out, nil
}

func (a *audioOut) Close() error {
	if a == nil || a.player == nil {
		return nil
	}
	return a.player.Close()
}
