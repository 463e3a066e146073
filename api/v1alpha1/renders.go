package v1alpha1

import "net/http"

// Render implementations so the wire types satisfy chi's render.Renderer.

func (e Error) Render(w http.ResponseWriter, r *http.Request) error { return nil }

func (p ParameterRangeList) Render(w http.ResponseWriter, r *http.Request) error { return nil }

func (s Session) Render(w http.ResponseWriter, r *http.Request) error { return nil }

func (l SessionList) Render(w http.ResponseWriter, r *http.Request) error { return nil }

func (m ModalityCostList) Render(w http.ResponseWriter, r *http.Request) error { return nil }

func (p Projection) Render(w http.ResponseWriter, r *http.Request) error { return nil }

func (s Sensitivity) Render(w http.ResponseWriter, r *http.Request) error { return nil }

func (s Summary) Render(w http.ResponseWriter, r *http.Request) error { return nil }
