package batch

import "github.com/edirooss/valkeybatch/command"

// GeoUnit is the distance unit token shared by GEODIST/GEOSEARCH.
type GeoUnit string

const (
	GeoMeters     GeoUnit = "m"
	GeoKilometers GeoUnit = "km"
	GeoMiles      GeoUnit = "mi"
	GeoFeet       GeoUnit = "ft"
)

// GeoMember is one (longitude, latitude, member) triple added by GeoAdd.
type GeoMember struct {
	Longitude float64
	Latitude  float64
	Member    string
}

// GeoAddOptions configures GEOADD's optional NX/XX/CH clauses. NX and XX
// are mutually exclusive, as with ZADD.
type GeoAddOptions struct {
	NX bool
	XX bool
	CH bool
}

func (o *GeoAddOptions) tokens() []string {
	if o == nil {
		return nil
	}
	ab := newArgBuilder()
	ab.when(o.NX, "NX")
	ab.when(o.XX, "XX")
	ab.when(o.CH, "CH")
	return ab.build()
}

// GeoAdd adds geospatial members to the sorted set stored at key. Command
// Response: integer (members added, or changed when CH is set).
//
// https://valkey.io/commands/geoadd/
func (b *BaseBatch[T]) GeoAdd(key string, opts *GeoAddOptions, members ...GeoMember) *T {
	if len(members) == 0 {
		return b.argErr("GEOADD", "members must not be empty")
	}
	ab := newArgBuilder(key).token(opts.tokens()...)
	for _, m := range members {
		ab.token(f64(m.Longitude), f64(m.Latitude), m.Member)
	}
	return b.addCmd(command.NewText("GEOADD", ab.build()...), convInt("GEOADD"))
}

// GeoPos returns the longitude/latitude of the given members. Command
// Response: array of nullable array (each a [longitude, latitude] pair, or
// nil for a missing member).
//
// https://valkey.io/commands/geopos/
func (b *BaseBatch[T]) GeoPos(key string, members ...string) *T {
	if len(members) == 0 {
		return b.argErr("GEOPOS", "members must not be empty")
	}
	return b.addCmd(command.NewText("GEOPOS", append([]string{key}, members...)...), convArray("GEOPOS"))
}

// GeoDist returns the distance between member1 and member2, in the given
// unit. The unit token is appended only when provided, in keeping with
// the command's 3- and 4-argument overloads (§4.3: the server defaults to
// meters when the unit argument is omitted). Command Response: nullable
// float.
//
// https://valkey.io/commands/geodist/
func (b *BaseBatch[T]) GeoDist(key, member1, member2 string, unit GeoUnit) *T {
	ab := newArgBuilder(key, member1, member2)
	if unit != "" {
		ab.token(string(unit))
	}
	return b.addCmd(command.NewText("GEODIST", ab.build()...), convNullableFloat("GEODIST"))
}

// GeoHash returns the standard geohash string for each of the given
// members. Command Response: array of nullable text.
//
// https://valkey.io/commands/geohash/
func (b *BaseBatch[T]) GeoHash(key string, members ...string) *T {
	if len(members) == 0 {
		return b.argErr("GEOHASH", "members must not be empty")
	}
	return b.addCmd(command.NewText("GEOHASH", append([]string{key}, members...)...), convArrayNullableText("GEOHASH"))
}

// GeoSearchFromMember anchors GeoSearch on an existing member's position.
type GeoSearchFromMember struct{ Member string }

// GeoSearchFromCoord anchors GeoSearch on an arbitrary longitude/latitude.
type GeoSearchFromCoord struct{ Longitude, Latitude float64 }

// GeoSearchByRadius bounds GeoSearch to a circular area.
type GeoSearchByRadius struct {
	Radius float64
	Unit   GeoUnit
}

// GeoSearchByBox bounds GeoSearch to a rectangular area.
type GeoSearchByBox struct {
	Width, Height float64
	Unit          GeoUnit
}

// GeoSearchOptions configures GEOSEARCH's optional COUNT/ASC/DESC/
// WITHCOORD/WITHDIST/WITHHASH clauses.
type GeoSearchOptions struct {
	Count     *int64
	Any       bool
	Asc       bool
	Desc      bool
	WithCoord bool
	WithDist  bool
	WithHash  bool
}

func geoSearchFromTokens(from any) []string {
	switch f := from.(type) {
	case GeoSearchFromMember:
		return []string{"FROMMEMBER", f.Member}
	case GeoSearchFromCoord:
		return []string{"FROMLONLAT", f64(f.Longitude), f64(f.Latitude)}
	default:
		return nil
	}
}

func geoSearchByTokens(by any) []string {
	switch v := by.(type) {
	case GeoSearchByRadius:
		return []string{"BYRADIUS", f64(v.Radius), string(v.Unit)}
	case GeoSearchByBox:
		return []string{"BYBOX", f64(v.Width), f64(v.Height), string(v.Unit)}
	default:
		return nil
	}
}

func (o *GeoSearchOptions) tokens() []string {
	if o == nil {
		return nil
	}
	ab := newArgBuilder()
	if o.Count != nil {
		ab.withOptionalInt("COUNT", o.Count)
		ab.when(o.Any, "ANY")
	}
	ab.when(o.Asc, "ASC")
	ab.when(o.Desc, "DESC")
	ab.when(o.WithCoord, "WITHCOORD")
	ab.when(o.WithDist, "WITHDIST")
	ab.when(o.WithHash, "WITHHASH")
	return ab.build()
}

// GeoSearch searches the sorted set stored at key for members within the
// given from-anchor and by-shape, accepting any combination of
// GeoSearchFromMember/GeoSearchFromCoord and
// GeoSearchByRadius/GeoSearchByBox (§4.3). Command Response: array.
//
// https://valkey.io/commands/geosearch/
func (b *BaseBatch[T]) GeoSearch(key string, from, by any, opts *GeoSearchOptions) *T {
	fromTok := geoSearchFromTokens(from)
	byTok := geoSearchByTokens(by)
	if fromTok == nil {
		return b.argErr("GEOSEARCH", "from must be GeoSearchFromMember or GeoSearchFromCoord")
	}
	if byTok == nil {
		return b.argErr("GEOSEARCH", "by must be GeoSearchByRadius or GeoSearchByBox")
	}
	ab := newArgBuilder(key).token(fromTok...).token(byTok...).token(opts.tokens()...)
	return b.addCmd(command.NewText("GEOSEARCH", ab.build()...), convArray("GEOSEARCH"))
}

// GeoSearchStore is GeoSearch, storing the result into destination instead
// of returning it. storeDist, when true, stores distances instead of
// member coordinates (the command's STOREDIST option). Command Response:
// integer (number of elements stored).
//
// https://valkey.io/commands/geosearchstore/
func (b *BaseBatch[T]) GeoSearchStore(destination, source string, from, by any, opts *GeoSearchOptions, storeDist bool) *T {
	fromTok := geoSearchFromTokens(from)
	byTok := geoSearchByTokens(by)
	if fromTok == nil {
		return b.argErr("GEOSEARCHSTORE", "from must be GeoSearchFromMember or GeoSearchFromCoord")
	}
	if byTok == nil {
		return b.argErr("GEOSEARCHSTORE", "by must be GeoSearchByRadius or GeoSearchByBox")
	}
	ab := newArgBuilder(destination, source).token(fromTok...).token(byTok...).token(opts.tokens()...)
	ab.when(storeDist, "STOREDIST")
	return b.addCmd(command.NewText("GEOSEARCHSTORE", ab.build()...), convInt("GEOSEARCHSTORE"))
}
