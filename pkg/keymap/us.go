package keymap

import (
	evdev "github.com/holoplot/go-evdev"
)

// usKeys lists the US QWERTY symbols. A missing Shifted value means the key
// shows the same token in both states; a missing entry resolves to Unknown.
var usKeys = [KeyMax + 1]Entry{
	evdev.KEY_ESC: {Normal: "<ESC>"},

	evdev.KEY_1: {Normal: "1", Shifted: "!"},
	evdev.KEY_2: {Normal: "2", Shifted: "@"},
	evdev.KEY_3: {Normal: "3", Shifted: "#"},
	evdev.KEY_4: {Normal: "4", Shifted: "$"},
	evdev.KEY_5: {Normal: "5", Shifted: "%"},
	evdev.KEY_6: {Normal: "6", Shifted: "^"},
	evdev.KEY_7: {Normal: "7", Shifted: "&"},
	evdev.KEY_8: {Normal: "8", Shifted: "*"},
	evdev.KEY_9: {Normal: "9", Shifted: "("},
	evdev.KEY_0: {Normal: "0", Shifted: ")"},

	evdev.KEY_MINUS:     {Normal: "-", Shifted: "_"},
	evdev.KEY_EQUAL:     {Normal: "=", Shifted: "+"},
	evdev.KEY_BACKSPACE: {Normal: "<Backspace>"},
	evdev.KEY_TAB:       {Normal: "<Tab>"},

	evdev.KEY_Q: {Normal: "q", Shifted: "Q"},
	evdev.KEY_W: {Normal: "w", Shifted: "W"},
	evdev.KEY_E: {Normal: "e", Shifted: "E"},
	evdev.KEY_R: {Normal: "r", Shifted: "R"},
	evdev.KEY_T: {Normal: "t", Shifted: "T"},
	evdev.KEY_Y: {Normal: "y", Shifted: "Y"},
	evdev.KEY_U: {Normal: "u", Shifted: "U"},
	evdev.KEY_I: {Normal: "i", Shifted: "I"},
	evdev.KEY_O: {Normal: "o", Shifted: "O"},
	evdev.KEY_P: {Normal: "p", Shifted: "P"},

	evdev.KEY_LEFTBRACE:  {Normal: "[", Shifted: "{"},
	evdev.KEY_RIGHTBRACE: {Normal: "]", Shifted: "}"},
	evdev.KEY_ENTER:      {Normal: "<Enter>"},
	evdev.KEY_LEFTCTRL:   {Normal: "<LCTRL>"},

	evdev.KEY_A: {Normal: "a", Shifted: "A"},
	evdev.KEY_S: {Normal: "s", Shifted: "S"},
	evdev.KEY_D: {Normal: "d", Shifted: "D"},
	evdev.KEY_F: {Normal: "f", Shifted: "F"},
	evdev.KEY_G: {Normal: "g", Shifted: "G"},
	evdev.KEY_H: {Normal: "h", Shifted: "H"},
	evdev.KEY_J: {Normal: "j", Shifted: "J"},
	evdev.KEY_K: {Normal: "k", Shifted: "K"},
	evdev.KEY_L: {Normal: "l", Shifted: "L"},

	evdev.KEY_SEMICOLON:  {Normal: ";", Shifted: ":"},
	evdev.KEY_APOSTROPHE: {Normal: "'", Shifted: "\""},
	evdev.KEY_GRAVE:      {Normal: "`", Shifted: "~"},
	evdev.KEY_LEFTSHIFT:  {Normal: "<LSHIFT>"},
	evdev.KEY_BACKSLASH:  {Normal: "\\", Shifted: "|"},

	evdev.KEY_Z: {Normal: "z", Shifted: "Z"},
	evdev.KEY_X: {Normal: "x", Shifted: "X"},
	evdev.KEY_C: {Normal: "c", Shifted: "C"},
	evdev.KEY_V: {Normal: "v", Shifted: "V"},
	evdev.KEY_B: {Normal: "b", Shifted: "B"},
	evdev.KEY_N: {Normal: "n", Shifted: "N"},
	evdev.KEY_M: {Normal: "m", Shifted: "M"},

	evdev.KEY_COMMA:      {Normal: ",", Shifted: "<"},
	evdev.KEY_DOT:        {Normal: ".", Shifted: ">"},
	evdev.KEY_SLASH:      {Normal: "/", Shifted: "?"},
	evdev.KEY_RIGHTSHIFT: {Normal: "<RSHIFT>"},
	evdev.KEY_KPASTERISK: {Normal: "<KP*>"},
	evdev.KEY_LEFTALT:    {Normal: "<LALT>"},
	evdev.KEY_SPACE:      {Normal: " "},
	evdev.KEY_CAPSLOCK:   {Normal: "<CapsLock>"},

	evdev.KEY_F1:  {Normal: "<F1>"},
	evdev.KEY_F2:  {Normal: "<F2>"},
	evdev.KEY_F3:  {Normal: "<F3>"},
	evdev.KEY_F4:  {Normal: "<F4>"},
	evdev.KEY_F5:  {Normal: "<F5>"},
	evdev.KEY_F6:  {Normal: "<F6>"},
	evdev.KEY_F7:  {Normal: "<F7>"},
	evdev.KEY_F8:  {Normal: "<F8>"},
	evdev.KEY_F9:  {Normal: "<F9>"},
	evdev.KEY_F10: {Normal: "<F10>"},

	evdev.KEY_NUMLOCK:    {Normal: "<NumLock>"},
	evdev.KEY_SCROLLLOCK: {Normal: "<ScrollLock>"},
	evdev.KEY_KP7:        {Normal: "<KP7>"},
	evdev.KEY_KP8:        {Normal: "<KP8>"},
	evdev.KEY_KP9:        {Normal: "<KP9>"},
	evdev.KEY_KPMINUS:    {Normal: "<KPMINUS>"},
	evdev.KEY_KP4:        {Normal: "<KP4>"},
	evdev.KEY_KP5:        {Normal: "<KP5>"},
	evdev.KEY_KP6:        {Normal: "<KP6>"},
	evdev.KEY_KPPLUS:     {Normal: "<KPPLUS>"},
	evdev.KEY_KP1:        {Normal: "<KP1>"},
	evdev.KEY_KP2:        {Normal: "<KP2>"},
	evdev.KEY_KP3:        {Normal: "<KP3>"},
	evdev.KEY_KP0:        {Normal: "<KP0>"},
	evdev.KEY_KPDOT:      {Normal: "<KPDOT>"},

	evdev.KEY_F11: {Normal: "<F11>"},
	evdev.KEY_F12: {Normal: "<F12>"},

	evdev.KEY_KPENTER:   {Normal: "<KPEnter>"},
	evdev.KEY_RIGHTCTRL: {Normal: "<RCTRL>"},
	evdev.KEY_KPSLASH:   {Normal: "<KP/>"},
	evdev.KEY_SYSRQ:     {Normal: "<SysRQ>"},
	evdev.KEY_RIGHTALT:  {Normal: "<RALT>"},

	evdev.KEY_HOME:     {Normal: "<Home>"},
	evdev.KEY_UP:       {Normal: "<UP>"},
	evdev.KEY_PAGEUP:   {Normal: "<PAGE_UP>"},
	evdev.KEY_LEFT:     {Normal: "<LEFT>"},
	evdev.KEY_RIGHT:    {Normal: "<RIGHT>"},
	evdev.KEY_END:      {Normal: "<END>"},
	evdev.KEY_DOWN:     {Normal: "<DOWN>"},
	evdev.KEY_PAGEDOWN: {Normal: "<PAGEDOWN>"},
	evdev.KEY_INSERT:   {Normal: "<INSERT>"},
	evdev.KEY_DELETE:   {Normal: "<DELETE>"},

	evdev.KEY_MACRO:      {Normal: "<MACRO>"},
	evdev.KEY_MUTE:       {Normal: "<MUTE>"},
	evdev.KEY_VOLUMEDOWN: {Normal: "<VOLUME_DOWN>"},
	evdev.KEY_VOLUMEUP:   {Normal: "<VOLUME_UP>"},
	evdev.KEY_POWER:      {Normal: "<POWER>"},

	evdev.KEY_KPEQUAL:     {Normal: "<KPEqual>"},
	evdev.KEY_KPPLUSMINUS: {Normal: "<KPPlusMinus>"},
	evdev.KEY_PAUSE:       {Normal: "<Pause>"},
	evdev.KEY_SCALE:       {Normal: "<Scale>"},
	evdev.KEY_KPCOMMA:     {Normal: "<KPComma>"},
}
