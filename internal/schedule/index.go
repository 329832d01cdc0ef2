package schedule

import (
	"strings"

	"github.com/ayase-lab/mmadmin/internal/domain"
	"github.com/google/uuid"
)

// VenueResolver normalizes the three historic forms of a venue reference
// (id, short name, full name) to one canonical id. Built once per fetch
// from the venue directory; resolution afterwards is a single map lookup.
type VenueResolver struct {
	byKey  map[string]uuid.UUID
	venues map[uuid.UUID]domain.Venue
}

// NewVenueResolver indexes every identifying key of every venue.
func NewVenueResolver(venues []domain.Venue) *VenueResolver {
	r := &VenueResolver{
		byKey:  make(map[string]uuid.UUID, len(venues)*3),
		venues: make(map[uuid.UUID]domain.Venue, len(venues)),
	}
	for _, v := range venues {
		r.venues[v.ID] = v
		r.byKey[normalizeKey(v.ID.String())] = v.ID
		if v.Name != "" {
			r.byKey[normalizeKey(v.Name)] = v.ID
		}
		if v.ShortName != "" {
			r.byKey[normalizeKey(v.ShortName)] = v.ID
		}
	}
	return r
}

// Resolve maps any venue reference form to its canonical id.
func (r *VenueResolver) Resolve(ref string) (uuid.UUID, bool) {
	id, ok := r.byKey[normalizeKey(ref)]
	return id, ok
}

// Venue returns the venue record for a canonical id.
func (r *VenueResolver) Venue(id uuid.UUID) (domain.Venue, bool) {
	v, ok := r.venues[id]
	return v, ok
}

// KeysFor lists every key the given venue is registered under.
func (r *VenueResolver) KeysFor(id uuid.UUID) []string {
	v, ok := r.venues[id]
	if !ok {
		return nil
	}
	keys := []string{v.ID.String()}
	if v.Name != "" {
		keys = append(keys, v.Name)
	}
	if v.ShortName != "" {
		keys = append(keys, v.ShortName)
	}
	return keys
}

// CanonicalRef maps any form of venue reference to the canonical id
// string plus every normalized key the venue is known under. Writes
// store the canonical form; venue-scoped queries must match all keys,
// because historic rows may still carry a name or short name in any
// casing. An unresolvable reference maps to itself.
func (r *VenueResolver) CanonicalRef(ref string) (canonical string, keys []string) {
	id, ok := r.Resolve(ref)
	if !ok {
		return ref, []string{normalizeKey(ref)}
	}
	for _, k := range r.KeysFor(id) {
		keys = append(keys, normalizeKey(k))
	}
	return id.String(), keys
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

type dateVenueKey struct {
	date  string
	venue uuid.UUID
}

type dateVenueBandKey struct {
	date  string
	venue uuid.UUID
	band  domain.TimeBand
}

// Index is the per-snapshot lookup structure over a month's events.
// The calendar re-queries per cell (up to 31 days x venues x 3 bands per
// render), so construction is O(n) and every lookup is a map hit.
//
// The index is a pure derived value; it is rebuilt whenever the
// underlying event list changes and never mutated in place.
type Index struct {
	resolver *VenueResolver

	byDate          map[string][]domain.PerformanceEvent
	byDateVenue     map[dateVenueKey][]domain.PerformanceEvent
	byDateVenueBand map[dateVenueBandKey][]domain.PerformanceEvent
}

// BuildIndex indexes events by date, date+venue and date+venue+band.
// An event whose venue reference resolves to nothing is still present in
// date-only lookups; it is only absent from venue-scoped ones.
func BuildIndex(events []domain.PerformanceEvent, resolver *VenueResolver) *Index {
	idx := &Index{
		resolver:        resolver,
		byDate:          make(map[string][]domain.PerformanceEvent),
		byDateVenue:     make(map[dateVenueKey][]domain.PerformanceEvent),
		byDateVenueBand: make(map[dateVenueBandKey][]domain.PerformanceEvent),
	}
	for _, e := range events {
		idx.byDate[e.Date] = append(idx.byDate[e.Date], e)

		venueID, ok := resolver.Resolve(e.VenueRef)
		if !ok {
			continue
		}
		dv := dateVenueKey{date: e.Date, venue: venueID}
		idx.byDateVenue[dv] = append(idx.byDateVenue[dv], e)

		dvb := dateVenueBandKey{date: e.Date, venue: venueID, band: ClassifyBand(e)}
		idx.byDateVenueBand[dvb] = append(idx.byDateVenueBand[dvb], e)
	}
	return idx
}

// ByDate returns every event on the given date, in input order.
func (i *Index) ByDate(date string) []domain.PerformanceEvent {
	return i.byDate[date]
}

// ByDateVenue returns the events on a date at a venue. venueKey may be
// the venue's id, short name or full name.
func (i *Index) ByDateVenue(date, venueKey string) []domain.PerformanceEvent {
	id, ok := i.resolver.Resolve(venueKey)
	if !ok {
		return nil
	}
	return i.byDateVenue[dateVenueKey{date: date, venue: id}]
}

// ByDateVenueBand returns the events in one (date, venue, band) slot.
func (i *Index) ByDateVenueBand(date, venueKey string, band domain.TimeBand) []domain.PerformanceEvent {
	id, ok := i.resolver.Resolve(venueKey)
	if !ok {
		return nil
	}
	return i.byDateVenueBand[dateVenueBandKey{date: date, venue: id, band: band}]
}

// Resolver exposes the venue resolver the index was built with.
func (i *Index) Resolver() *VenueResolver {
	return i.resolver
}
