// Package analyze decides the fate of a single Turing machine.
//
// An Analyzer runs a strictly ordered pipeline from cheap to expensive checks
// and stops at the first one that classifies the machine:
//
//  1. CheckImmediateHalt     O(1)   start action goes to halt
//  2. CheckSimpleElope       O(1)   start action goes back to state 0
//  3. CheckHaltExists        O(1)   bit-parallel test for any halt action
//  4. CheckHaltReachable     O(N)   DFS over the state graph from state 0
//  5. RunTM                  O(max steps) execution with run-away detection
//
// Run-away detection: while the head is outside the written range it reads
// only 0s. If a state repeats during one such excursion, the machine has
// followed a cycle of on-read-0 actions that did not bring it back, and the
// head is at least as far out as before, so it will repeat that cycle
// forever. The set of states seen is reset whenever the head re-enters the
// written range.
//
// An Analyzer owns a tape and a DFS stack that are reused for every machine;
// it is not safe for concurrent use. Give every goroutine its own Analyzer.
package analyze
