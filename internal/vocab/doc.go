// Package vocab derives the character vocabulary of a text-recognition
// model from the transcriptions in one or more label files.
package vocab
