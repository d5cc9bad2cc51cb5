// Package service contains the application use cases of the news API. It
// sits between the HTTP handlers and the stores defined in internal/store,
// coordinating reads that touch more than one store and wrapping failures
// with the operation that produced them.
//
// Services never translate errors into HTTP terms. A store error keeps its
// identity through the service wrapper, so the API layer can still classify
// it with store.KindOf.
package service
