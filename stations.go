// Package webradio implements a single-key internet radio console: a fixed
// menu of stations and utility actions driven one keystroke at a time, with
// all audio work delegated to an audioengine backend.
package webradio

// Station is one selectable network stream. The table is compiled in;
// extending it is just adding rows, the dispatch mechanism does not change.
type Station struct {
	Key  rune
	Name string
	URL  string
}

var stations = []Station{
	{'0', "MDR-Klassik", "http://mdr-284350-0.cast.mdr.de/mdr/284350/0/mp3/high/stream.mp3"},
	{'1', "SRF1 AG-SO", "http://stream.srg-ssr.ch/m/regi_ag_so/mp3_128"},
	{'2', "SRF2", "http://stream.srg-ssr.ch/m/drs2/mp3_128"},
	{'3', "SRF3", "http://stream.srg-ssr.ch/m/drs3/mp3_128"},
	{'4', "SRF4 News", "http://stream.srg-ssr.ch/m/drs4news/mp3_128"},
	{'5', "Swiss Classic", "http://stream.srg-ssr.ch/m/rsc_de/mp3_128"},
	{'6', "Swiss Jazz", "http://stream.srg-ssr.ch/m/rsj/mp3_128"},
	{'7', "SRF Musikwelle", "http://stream.srg-ssr.ch/m/drsmw/mp3_128"},
	{'8', "Alles Blasmusik", "http://stream.bayerwaldradio.com/allesblasmusik"},
	{'9', "WKVI-AM", "http://kvbstreams.dyndns.org:8000/wkvi-am"},
	{'a', "DLF", "http://st01.dlf.de/dlf/01/128/mp3/stream.mp3"},
	{'b', "WDR 1 Live", "http://www.wdr.de/wdrlive/media/einslive.m3u"},
	{'c', "SWR1 BW", "https://liveradio.swr.de/sw282p3/swr1bw/"},
	{'d', "SWR2", "https://liveradio.swr.de/sw282p3/swr2/"},
	{'e', "SWR3", "https://liveradio.swr.de/sw282p3/swr3/"},
	{'f', "SWR4 BW", "https://liveradio.swr.de/sw282p3/swr4bw/"},
	{'g', "BR Klassik", "https://dispatcher.rndfnk.com/br/brklassik/live/mp3/mid"},
	{'h', "Blues Mobile", "https://strm112.1.fm/blues_mobile_mp3"},
	{'i', "Jazz MMX", "http://jazz.streamr.ru/jazz-64.mp3"},
	{'j', "Radio Classique", "http://radioclassique.ice.infomaniak.ch/radioclassique-high.mp3"},
	{'k', "HIT Radio FFH MP3", "http://mp3.ffh.de/radioffh/hqlivestream.mp3"},
	{'l', "Capital London", "http://vis.media-ice.musicradio.com/CapitalMP3"},
	{'m', "ORF", "https://orf-live.ors-shoutcast.at/vbg-q1a"},
	{'n', "Beatles Radio", "http://www.beatlesradio.com:8000/stream/1/"},
}

// speechDemo is one text-to-speech menu entry; the language tag is bound to
// the handler, the text travels as the entry's argument.
type speechDemo struct {
	Key   rune
	Label string
	Lang  string
	Text  string
}

var speechDemos = []speechDemo{
	{'!', "Text to speech en", "en",
		"Internet radio (also web radio, net radio, streaming radio, e-radio, IP radio, online radio) is a digital audio service transmitted via the Internet"},
	{'.', "Text to speech de", "de",
		"Als Internetradio (auch Webradio) bezeichnet man ein Internet-basiertes Angebot an Hörfunksendungen"},
	{',', "Text to speech it", "it",
		"Internet radio (anche web radio) è il termine usato per descrivere una gamma di programmi radiofonici su Internet"},
}

// StationURL returns the stream URL bound to a station key.
func StationURL(key rune) (string, bool) {
	idx, ok := stationIndexByKey(key)
	if !ok {
		return "", false
	}
	return stations[idx].URL, true
}

// stationIndexByKey finds a station row by its menu key.
func stationIndexByKey(key rune) (int, bool) {
	for i, s := range stations {
		if s.Key == key {
			return i, true
		}
	}
	return 0, false
}
