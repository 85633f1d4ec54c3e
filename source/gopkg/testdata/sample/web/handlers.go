package web

//scanx:controller name=home
type HomeHandler struct{}

// Plain carries no directive.
type Plain struct{}
