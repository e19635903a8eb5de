package webradio

// PlaybackState tracks what the dispatcher believes is playing. It is the
// single source of truth for the current station, volume level and speaker
// flag; the audio engine is told about changes but never queried.
type PlaybackState struct {
	CurrentIndex  int    // index into the station table
	CurrentURL    string // URL of the selected station
	CurrentVolume int    // audioengine.MinVolume..audioengine.MaxVolume
	SpeakerOn     bool
}
