package entity

type subject interface {
	Attach(observer Observer)
	Detach(observer Observer)
	notifyAll()
}

// Observer receives a notification every time the subject's balance changes.
type Observer interface {
	Update(account *Account)
}
