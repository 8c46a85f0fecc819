/*
Package textgen layers text training and generation on top of the generic
chain primitives in pkg/markov.

It tokenizes input text into word symbols, feeds them into a string model,
and renders generated or predicted symbol sequences back into text using
configurable separator and end-of-chain rules.
*/
package textgen
