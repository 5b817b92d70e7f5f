// Package syntax holds the string-format checkers used by lexicon string
// definitions. Each checker is a fixed acceptance contract over the raw
// string; none of them perform I/O or resolution.
package syntax

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/ipfs/go-cid"
)

var (
	didRe    = regexp.MustCompile(`^did:[a-z]+:[a-zA-Z0-9._:%-]*[a-zA-Z0-9._-]$`)
	handleRe = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)
	langRe   = regexp.MustCompile(`^(i|[a-zA-Z]{2,3})(-[a-zA-Z0-9]{1,8})*$`)
	rkeyRe   = regexp.MustCompile(`^[a-zA-Z0-9._:~-]{1,512}$`)
)

// IsDatetime reports whether s is an RFC 3339 timestamp with an explicit
// time zone.
func IsDatetime(s string) bool {
	if len(s) < len("2006-01-02T15:04:05Z") || len(s) > 64 {
		return false
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

// IsURI reports whether s is an absolute URI with a scheme and a non-empty
// remainder, free of whitespace.
func IsURI(s string) bool {
	if s == "" || len(s) > 8192 || strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}
	return len(s) > len(u.Scheme)+1
}

// IsDID reports whether s is a DID: method in lowercase letters followed by a
// method-specific identifier that does not end in ':' or '%'.
func IsDID(s string) bool {
	return len(s) <= 2048 && didRe.MatchString(s)
}

// IsHandle reports whether s is a hostname-shaped handle: two or more
// dot-separated labels with an alphabetic-leading TLD.
func IsHandle(s string) bool {
	return len(s) <= 253 && handleRe.MatchString(s)
}

// IsATIdentifier accepts either a DID-shaped or a handle-shaped value.
func IsATIdentifier(s string) bool {
	return IsDID(s) || IsHandle(s)
}

// IsNSID reports whether s is a namespaced identifier: at least three
// dot-separated segments where the leading segments form a reversed domain
// authority and the final segment is an alphanumeric name starting with a
// letter.
func IsNSID(s string) bool {
	if len(s) == 0 || len(s) > 317 {
		return false
	}
	segs := strings.Split(s, ".")
	if len(segs) < 3 {
		return false
	}
	for i, seg := range segs {
		if len(seg) == 0 || len(seg) > 63 {
			return false
		}
		last := i == len(segs)-1
		for j := 0; j < len(seg); j++ {
			c := seg[j]
			switch {
			case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			case c >= '0' && c <= '9':
				if j == 0 && (i == 0 || last) {
					return false
				}
			case c == '-':
				if last || j == 0 || j == len(seg)-1 {
					return false
				}
			default:
				return false
			}
		}
	}
	return true
}

const tidAlphabet = "234567abcdefghijklmnopqrstuvwxyz"

// IsTID reports whether s is a 13-character base32-sortable timestamp
// identifier. The leading character carries the high bit and is restricted to
// the first half of the alphabet.
func IsTID(s string) bool {
	if len(s) != 13 {
		return false
	}
	if !strings.ContainsRune("234567abcdefghij", rune(s[0])) {
		return false
	}
	for _, c := range s[1:] {
		if !strings.ContainsRune(tidAlphabet, c) {
			return false
		}
	}
	return true
}

// IsRecordKey reports whether s is a valid record key. "." and ".." are
// reserved and rejected.
func IsRecordKey(s string) bool {
	if s == "." || s == ".." {
		return false
	}
	return rkeyRe.MatchString(s)
}

// IsLanguage reports whether s looks like a BCP 47 language tag: a 2-3 letter
// primary subtag (or legacy "i") followed by hyphenated subtags.
func IsLanguage(s string) bool {
	return len(s) <= 128 && langRe.MatchString(s)
}

// IsCID reports whether s parses as a content identifier.
func IsCID(s string) bool {
	if len(s) == 0 || len(s) > 256 {
		return false
	}
	_, err := cid.Decode(s)
	return err == nil
}

// IsATURI reports whether s is an at:// URI: an authority (DID or handle),
// then an optional collection NSID, then an optional record key.
func IsATURI(s string) bool {
	if len(s) > 8192 {
		return false
	}
	rest, ok := strings.CutPrefix(s, "at://")
	if !ok || rest == "" {
		return false
	}
	parts := strings.Split(rest, "/")
	if len(parts) > 3 {
		return false
	}
	if !IsATIdentifier(parts[0]) {
		return false
	}
	if len(parts) > 1 && !IsNSID(parts[1]) {
		return false
	}
	if len(parts) > 2 && !IsRecordKey(parts[2]) {
		return false
	}
	return true
}
