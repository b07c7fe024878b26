package cache

import (
	"encoding/hex"
	"sort"
	"strconv"
	"strings"

	"github.com/Faultbox/rocketmesh/internal/mesh"
	"golang.org/x/crypto/blake2b"
)

// schemaVersion changes whenever the builders' output for the same
// parameters changes, so old entries stop matching.
const schemaVersion = 1

// Key derives a stable content address for a component's parameter record.
// Field order never affects the key; the mesh resolution is part of it.
func Key(component string, fields map[string]string) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("rocketmesh/v")
	b.WriteString(strconv.Itoa(schemaVersion))
	b.WriteByte('\n')
	b.WriteString("component=")
	b.WriteString(component)
	b.WriteByte('\n')
	b.WriteString("resolution=")
	b.WriteString(strconv.Itoa(mesh.AngularDivisions))
	b.WriteByte('x')
	b.WriteString(strconv.Itoa(mesh.AxialSamples))
	b.WriteByte('\n')
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(strconv.Quote(fields[name]))
		b.WriteByte('\n')
	}

	sum := blake2b.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
