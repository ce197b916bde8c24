package listcont

import "regexp"

// MarkerKind identifies the list marker found at the start of a line.
type MarkerKind uint8

const (
	MarkerBullet MarkerKind = iota
	MarkerNumbered
)

// Marker is a parsed list-item prefix.
type Marker struct {
	Kind   MarkerKind
	Indent string
	// Bullet is one of "-", "*", "+" for MarkerBullet.
	Bullet string
	// Digits holds the item number as written for MarkerNumbered.
	Digits string
}

var (
	bulletRE   = regexp.MustCompile(`^(\s*)([-*+])\s`)
	numberedRE = regexp.MustCompile(`^(\s*)(\d+)\.\s`)
)

// Match parses the list marker at the start of line. Bullets are tried
// before numbers.
func Match(line string) (Marker, bool) {
	if m := bulletRE.FindStringSubmatch(line); m != nil {
		return Marker{Kind: MarkerBullet, Indent: m[1], Bullet: m[2]}, true
	}
	if m := numberedRE.FindStringSubmatch(line); m != nil {
		return Marker{Kind: MarkerNumbered, Indent: m[1], Digits: m[2]}, true
	}
	return Marker{}, false
}
