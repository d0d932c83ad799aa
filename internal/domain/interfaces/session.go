package interfaces

// SessionObserver is told when the gateway opens or releases a session.
type SessionObserver interface {
	SessionOpened()
	SessionClosed()
}
