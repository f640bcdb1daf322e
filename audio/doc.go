// Package audio synthesizes the game's sound effects with beep and plays them on
// the default output device. Sounds are generated, no sample files are shipped
package audio
