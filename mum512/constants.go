package mum512

// constants128 are the round constants for MUM512's block mixer: one per
// 128-bit view of the 512-bit state, so each of the state's four limb
// pairs gets its own multiplier at every rotation.
var constants128 = [4]u128{
	{hi: 0x9e3779b97f4a7c15, lo: 0xbf58476d1ce4e5b9},
	{hi: 0x94d049bb133111eb, lo: 0xff51afd7ed558ccd},
	{hi: 0xc4ceb9fe1a85ec53, lo: 0x2545f4914f6cdd1d},
	{hi: 0x87c37b91114253d5, lo: 0x4cf5ad432745937f},
}

// initConst and finalConst are the distinguished constants used once each,
// to fold the seed/length into the initial state and to fold the
// finalisation constant into the last state value.
var (
	initConst  = u128{hi: 0x27d4eb2f165667c5, lo: 0x9e3779b185ebca87}
	finalConst = u128{hi: 0xc2b2ae3d27d4eb4f, lo: 0x3c6ef372fe94f82b}
)
