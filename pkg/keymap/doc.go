// Package keymap resolves evdev key codes to display strings for a US
// QWERTY keyboard. Printable keys resolve to the character they produce,
// everything else to a bracketed token such as <ESC> or <LSHIFT>.
package keymap
