// This file is part of Memview.
//
// Memview is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Memview is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Memview.  If not, see <https://www.gnu.org/licenses/>.

package terminal

import (
	"unicode/utf8"

	"github.com/jetsetilly/memview/terminal/easyterm"
)

// keyKind is the kind of a decoded key press.
type keyKind int

const (
	keyRune keyKind = iota
	keyUp
	keyDown
	keyLeft
	keyRight
	keyTab
	keyBackTab
	keyEscape
	keyEnter
	keyBackspace
	keyPageUp
	keyPageDown
	keyInterrupt
	keySuspend
)

// key is a single decoded key press. The rune field is only meaningful for
// keyRune.
type key struct {
	kind keyKind
	r    rune
}

type decodeState int

const (
	stateGround decodeState = iota
	stateEsc
	stateCSI
	stateSS3
)

// decoder turns the bytes read from a terminal in raw mode into key presses.
// State is carried between calls to decode() so that a sequence split over
// two reads is decoded correctly.
type decoder struct {
	state decodeState

	// the numeric parameter of a CSI sequence
	param []byte

	// bytes of an incomplete UTF-8 sequence
	partial []byte
}

// decode the bytes of a single read. A lone escape byte at the end of a read
// is taken to be the escape key.
func (d *decoder) decode(b []byte) []key {
	var keys []key

	for _, c := range b {
		switch d.state {
		case stateGround:
			keys = d.ground(keys, c)

		case stateEsc:
			switch c {
			case easyterm.EscCursor:
				d.state = stateCSI
				d.param = d.param[:0]
			case easyterm.EscSS3:
				d.state = stateSS3
			case easyterm.KeyEsc:
				keys = append(keys, key{kind: keyEscape})
			default:
				// alt+key. the escape is treated as a key press of its own
				keys = append(keys, key{kind: keyEscape})
				d.state = stateGround
				keys = d.ground(keys, c)
			}

		case stateCSI:
			switch {
			case c >= '0' && c <= '9' || c == ';':
				d.param = append(d.param, c)
			default:
				keys = d.csi(keys, c)
				d.state = stateGround
			}

		case stateSS3:
			keys = d.csi(keys, c)
			d.state = stateGround
		}
	}

	if d.state == stateEsc {
		keys = append(keys, key{kind: keyEscape})
		d.state = stateGround
	}

	return keys
}

func (d *decoder) ground(keys []key, c byte) []key {
	if len(d.partial) > 0 || c >= utf8.RuneSelf {
		d.partial = append(d.partial, c)
		if utf8.FullRune(d.partial) {
			r, _ := utf8.DecodeRune(d.partial)
			d.partial = d.partial[:0]
			keys = append(keys, key{kind: keyRune, r: r})
		}
		return keys
	}

	switch c {
	case easyterm.KeyEsc:
		d.state = stateEsc
	case easyterm.KeyTab:
		keys = append(keys, key{kind: keyTab})
	case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
		keys = append(keys, key{kind: keyEnter})
	case easyterm.KeyBackspace, easyterm.KeyBackspaceAlt:
		keys = append(keys, key{kind: keyBackspace})
	case easyterm.KeyCtrlC, easyterm.KeyCtrlQ:
		keys = append(keys, key{kind: keyInterrupt})
	case easyterm.KeyCtrlZ:
		keys = append(keys, key{kind: keySuspend})
	default:
		if c >= ' ' {
			keys = append(keys, key{kind: keyRune, r: rune(c)})
		}
	}

	return keys
}

// csi decodes the final byte of a CSI or SS3 sequence. Unrecognised sequences
// are dropped.
func (d *decoder) csi(keys []key, c byte) []key {
	switch c {
	case easyterm.CursorUp:
		return append(keys, key{kind: keyUp})
	case easyterm.CursorDown:
		return append(keys, key{kind: keyDown})
	case easyterm.CursorForward:
		return append(keys, key{kind: keyRight})
	case easyterm.CursorBackward:
		return append(keys, key{kind: keyLeft})
	case easyterm.CursorBackTab:
		return append(keys, key{kind: keyBackTab})
	case easyterm.ParamTilde:
		if len(d.param) == 1 {
			switch d.param[0] {
			case easyterm.ParamPageUp:
				return append(keys, key{kind: keyPageUp})
			case easyterm.ParamPageDown:
				return append(keys, key{kind: keyPageDown})
			}
		}
	}
	return keys
}
