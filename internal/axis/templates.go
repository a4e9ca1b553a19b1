package axis

import "github.com/avenira/orient-api/internal/domain"

// W aliases the partial axis-delta map to keep the tables readable.
type W = domain.AxisWeights

// Short axis names for the delta tables.
const (
	an = domain.AxisAnalytic
	cr = domain.AxisCreative
	op = domain.AxisOperational
	so = domain.AxisSocial
	ri = domain.AxisRisk
	st = domain.AxisStructure
)

// optionDeltas carries one axis-delta map per option index (0, 1, 2).
type optionDeltas [3]W

// The personality block (secteur_1..40) is covered by 24 domain-style
// templates and 16 style templates assigned cyclically to question ids
// instead of one bespoke entry per question. Per-question precision is
// traded for a table a human can actually maintain.
var domainStyleTemplates = []optionDeltas{
	{W{an: 2, st: 1}, W{cr: 2}, W{so: 2}},
	{W{op: 2}, W{an: 1, st: 1}, W{so: 1, cr: 1}},
	{W{cr: 2, ri: 1}, W{st: 2}, W{an: 1, op: 1}},
	{W{so: 2, op: 1}, W{an: 2}, W{cr: 1, ri: 1}},
	{W{ri: 2}, W{st: 1, op: 1}, W{so: 2}},
	{W{an: 1, cr: 1}, W{so: 2}, W{op: 2}},
	{W{st: 2, an: 1}, W{ri: 2}, W{cr: 2}},
	{W{so: 1, st: 1}, W{op: 2}, W{an: 2}},
	{W{cr: 2}, W{so: 1, ri: 1}, W{st: 2}},
	{W{op: 1, an: 1}, W{cr: 2}, W{so: 1, st: 1}},
	{W{ri: 1, cr: 1}, W{an: 2}, W{op: 1, so: 1}},
	{W{st: 1, op: 1}, W{so: 2}, W{ri: 2}},
	{W{an: 2}, W{op: 1, cr: 1}, W{so: 2, ri: 1}},
	{W{so: 2}, W{st: 2}, W{cr: 1, an: 1}},
	{W{op: 2, ri: 1}, W{cr: 1, so: 1}, W{an: 1, st: 1}},
	{W{cr: 1, st: 1}, W{ri: 1, op: 1}, W{so: 2}},
	{W{an: 1, ri: 1}, W{so: 1, op: 1}, W{cr: 2}},
	{W{st: 2}, W{an: 1, so: 1}, W{op: 2, ri: 1}},
	{W{so: 1, cr: 1}, W{st: 1, an: 1}, W{ri: 2}},
	{W{op: 2}, W{ri: 1, an: 1}, W{st: 1, so: 1}},
	{W{cr: 2, so: 1}, W{op: 2}, W{an: 2}},
	{W{ri: 1, st: 1}, W{cr: 1, an: 1}, W{so: 2, op: 1}},
	{W{an: 2, op: 1}, W{so: 2}, W{cr: 1, st: 1}},
	{W{st: 1, so: 1}, W{ri: 2}, W{op: 1, cr: 1}},
}

var styleTemplates = []optionDeltas{
	{W{st: 2}, W{cr: 1, ri: 1}, W{so: 1, op: 1}},
	{W{an: 1, st: 1}, W{so: 2}, W{cr: 2}},
	{W{op: 2}, W{an: 2}, W{ri: 1, so: 1}},
	{W{so: 2, cr: 1}, W{st: 2}, W{an: 1, ri: 1}},
	{W{ri: 2}, W{op: 1, st: 1}, W{cr: 1, so: 1}},
	{W{cr: 2}, W{an: 1, op: 1}, W{st: 2}},
	{W{so: 1, op: 1}, W{ri: 2}, W{an: 1, st: 1}},
	{W{an: 2}, W{cr: 2}, W{op: 1, so: 1}},
	{W{st: 1, ri: 1}, W{so: 1, an: 1}, W{op: 2}},
	{W{cr: 1, so: 1}, W{op: 2}, W{ri: 1, an: 1}},
	{W{an: 1, op: 1}, W{st: 2}, W{so: 2}},
	{W{ri: 1, cr: 1}, W{so: 2}, W{st: 1, an: 1}},
	{W{op: 1, st: 1}, W{cr: 2}, W{an: 2}},
	{W{so: 2}, W{ri: 1, op: 1}, W{cr: 1, st: 1}},
	{W{an: 1, cr: 1}, W{st: 1, op: 1}, W{ri: 2}},
	{W{st: 2, so: 1}, W{an: 2}, W{op: 1, cr: 1}},
}

// The job block (metier_1..20) reuses eight templates cyclically.
var metierTemplates = []optionDeltas{
	{W{an: 2}, W{op: 2}, W{so: 2}},
	{W{cr: 2}, W{st: 2}, W{ri: 2}},
	{W{op: 1, an: 1}, W{so: 1, cr: 1}, W{st: 1, ri: 1}},
	{W{so: 2}, W{an: 1, st: 1}, W{cr: 1, op: 1}},
	{W{ri: 1, op: 1}, W{cr: 2}, W{an: 1, so: 1}},
	{W{st: 2}, W{ri: 1, so: 1}, W{op: 2}},
	{W{an: 1, cr: 1}, W{op: 1, st: 1}, W{so: 1, ri: 1}},
	{W{so: 1, st: 1}, W{an: 2}, W{cr: 2}},
}
