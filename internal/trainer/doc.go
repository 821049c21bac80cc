// Package trainer hands a resolved configuration to the external
// recognition model trainer.
package trainer
