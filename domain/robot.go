// Package domain contains core concepts of the chatbot.
// This file defines the Robot identity every bot is built on.
// No runtime, network, or UI logic should be added here.
package domain

// Robot is the base identity of a bot. Two robots are the same robot when they share a name.
type Robot struct {
	name string
}

func NewRobot(name string) Robot {
	return Robot{name: name}
}

func (r Robot) Name() string {
	return r.name
}

func (r Robot) Equal(other Robot) bool {
	return r.name == other.name
}
