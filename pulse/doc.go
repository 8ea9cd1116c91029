// Package pulse simulates networks of communicating modules that pass low
// and high pulses.
//
// Module kinds:
//
//	broadcaster  repeats every pulse to all destinations
//	%name        flip-flop: ignores high; a low pulse toggles it and it
//	             sends high when turned on, low when turned off
//	&name        conjunction: remembers the last level from each input
//	             (initially low) and sends low only when all are high
//	(sink)       absorbs pulses; any destination without a declaration
//
// Pressing the button delivers one low pulse from "button" to the
// broadcaster. Pulses are processed strictly in wave order: a FIFO queue
// guarantees that every pulse emitted in wave n is handled before any of
// wave n+1, and a module emits to its destinations in listed order.
//
// The network is built in two passes. Pass one reads every declaration;
// pass two resolves destinations (adding sinks), builds a directed
// core.Graph of the wiring and seeds each conjunction's memory from the
// graph predecessors of that conjunction.
//
// Sinks: by default undeclared destinations become sinks. WithStrictSinks
// rejects them with ErrUnknownModule unless named through WithSinks.
//
// Two ways to find the first press that delivers low to a target are
// offered. PressesUntilLow simulates directly and suits small networks.
// CyclePresses handles the common shape where the target is fed by one
// conjunction whose inputs each fire high periodically: it records the first
// press on which each input fires and combines them with LCM. The result is
// only meaningful when each input fires with a period equal to its first
// firing press, which holds for counter-style sub-networks.
package pulse
