// Package wordlist supplies the embedded seed word list and the
// normalization rules that turn any word collection into the unique,
// lowercase, sorted form the dictionary file requires.
package wordlist
