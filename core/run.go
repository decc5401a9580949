package core

// Run is the outermost control loop: it calls the user-supplied setup
// routine exactly once, then the loop routine in an unconditional infinite
// loop with no exit, backoff, or rate limiting. Timing behavior belongs
// entirely to code inside loop, consistent with the cooperative
// single-threaded execution model.
//
// Run refuses to start unless InitClock has succeeded: with a frozen or
// wrong-rate clock no timing or I/O guarantee holds, so peripheral
// initialization failure halts before setup.
func Run(setup, loop func()) {
	if !clockReady {
		panic(ErrPeripheralInit)
	}
	if board == nil {
		panic(ErrNoBoard)
	}

	setup()
	for {
		loop()
	}
}
