package controller

// Controller struct holds the controller of the entire app
type Controller struct {
	Analysis interface{ Analysis }
}
