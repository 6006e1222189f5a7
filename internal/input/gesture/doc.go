// Package gesture arbitrates right-button input between camera panning
// and the host's native context menu.
//
// # State Machine
//
// The arbiter runs a three-state machine per right-button press:
//
//	Idle --(right down)--> Armed --(moved past threshold)--> Panning
//	Armed --(right up)--> Idle      (click or ambiguous release)
//	Panning --(right up)--> Idle
//
// While Armed the gesture's nature is undecided. Crossing DragThreshold
// commits it to a pan: the active tool is snapshotted, the host switches
// to the pan tool, and every subsequent move translates the camera by the
// screen delta divided by the current zoom. On release the saved tool is
// restored exactly once and the context menu for that release is
// suppressed.
//
// A release while still Armed, within both the distance and the time
// threshold, is a click: the arbiter hit-tests the release point, updates
// the selection, and lets the context-menu event through so the host's
// menu renders against the fresh selection. A release outside the time
// threshold but inside the distance threshold is ambiguous; the arbiter
// suppresses the menu, a deliberately conservative default.
//
// # Event Ownership
//
// Every event the arbiter sees receives a Verdict. Moves and downs
// belonging to a live session are consumed so the host cannot interpret
// them a second time. The click-path release is delegated so the host can
// position its menu from it.
//
// # Failure Policy
//
// Pointer capture and tool switching are best-effort. Errors from the
// host facade are swallowed; session cleanup always completes so a lost
// capture can never wedge subsequent gestures.
package gesture
