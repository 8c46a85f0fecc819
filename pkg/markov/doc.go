/*
Package markov provides variable-order Markov chain models over arbitrary
comparable symbol types, with support for incremental training,
most-probable-next-symbol prediction, and frequency-weighted random
sampling.

A Model maps bounded context windows to per-context frequency tables and
exposes the core add/advance/predict/sample primitives. Three thin
wrappers drive those primitives: Accumulator feeds training data one
symbol at a time, Generator draws random continuations using an injected
randomness source, and Predictor walks the most probable continuation.

Models are not internally synchronized: callers must ensure that no reads
run concurrently with training.
*/
package markov
