package notify

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/ayoisaiah/pomodoro/internal/static"
)

// SoundOff disables the completion sound.
const SoundOff = "off"

const (
	sampleRate      beep.SampleRate = 44100
	resampleQuality                 = 4
	bufferSize                      = 10
)

var (
	speakerOnce sync.Once
	// speakerErr is the outcome of the first initialisation and is returned
	// to every later caller
	speakerErr error

	speakerInit = func() error {
		return speaker.Init(
			sampleRate,
			sampleRate.N(time.Duration(int(time.Second)/bufferSize)),
		)
	}
)

// SoundPlayer plays a bundled sound by name or an audio file by path.
type SoundPlayer struct {
	Sound string
}

// NewSoundPlayer returns a player for sound, or nil if sound is disabled.
func NewSoundPlayer(sound string) *SoundPlayer {
	if sound == "" || sound == SoundOff {
		return nil
	}

	return &SoundPlayer{Sound: sound}
}

// Play decodes the sound and blocks until playback finishes.
func (p *SoundPlayer) Play() error {
	stream, format, err := decodeSound(p.Sound)
	if err != nil {
		return err
	}

	defer stream.Close()

	err = initSpeaker()
	if err != nil {
		return err
	}

	done := make(chan struct{})

	speaker.Play(beep.Seq(
		beep.Resample(resampleQuality, format.SampleRate, sampleRate, stream),
		beep.Callback(func() {
			close(done)
		}),
	))

	<-done

	return nil
}

// initSpeaker opens the audio device once. Without a device nothing drains
// the mixer, so a failure is reported on every call.
func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speakerInit()
	})

	return speakerErr
}

// decodeSound returns an audio stream for the specified sound. A name without
// an extension refers to a bundled sound.
func decodeSound(sound string) (beep.StreamSeekCloser, beep.Format, error) {
	var (
		b   []byte
		err error
	)

	ext := strings.ToLower(filepath.Ext(sound))
	if ext == "" {
		ext = ".wav"

		b, err = static.ReadFile(sound + ext)
		if err != nil {
			return nil, beep.Format{}, errUnknownSound.Fmt(sound)
		}
	} else {
		b, err = os.ReadFile(sound)
		if err != nil {
			return nil, beep.Format{}, err
		}
	}

	r := io.NopCloser(bytes.NewReader(b))

	switch ext {
	case ".ogg":
		return vorbis.Decode(r)
	case ".mp3":
		return mp3.Decode(r)
	case ".flac":
		return flac.Decode(r)
	case ".wav":
		return wav.Decode(r)
	}

	return nil, beep.Format{}, errInvalidSoundFormat
}

// ValidateSound checks that sound names a bundled sound or an audio file in a
// supported format.
func ValidateSound(sound string) error {
	if sound == "" || sound == SoundOff {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(sound))
	if ext == "" {
		if !slices.Contains(static.Sounds(), sound) {
			return errUnknownSound.Fmt(sound)
		}

		return nil
	}

	switch ext {
	case ".ogg", ".mp3", ".flac", ".wav":
		return nil
	}

	return errInvalidSoundFormat
}
