package notify

import "github.com/ayoisaiah/pomodoro/internal/apperr"

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file must be in mp3, ogg, flac, or wav format",
	}

	errUnknownSound = &apperr.Error{
		Message: "unknown sound: %s",
	}

	errParseCommand = &apperr.Error{
		Message: "unable to parse session command",
	}
)
