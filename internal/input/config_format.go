package input

// Keyspec is a key sequence specification string, e.g. "<space>qw" for the
// SPACE key, then the Q key, then the W key.
type Keyspec string

// Actionspec names an action to be triggered by input, e.g. "next-row".
type Actionspec string
