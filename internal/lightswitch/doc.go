// Package lightswitch is a two-state example domain for the state machine and
// event queue packages: a Light owner, OnEvent/OffEvent payloads and the
// OffState/OnState pair that react to them.
package lightswitch
