package main

import (
	"github.com/bloeys/gglm/gglm"
)

const (
	triangleDistance = 3.5

	nearClip = 0.1
	farClip  = 1000
)

var (
	fovRad float32 = 45 * gglm.Deg2Rad
)

// TriangleModelMat places the triangle in front of the camera, spinning around the (1, 1, 1) axis
// by elapsedSeconds radians
func TriangleModelMat(elapsedSeconds float32) gglm.TrMat {

	axis := gglm.NewVec3(1, 1, 1)
	axis.Normalize()

	rotMat := gglm.NewTrMatId()
	rotMat.Rotate(elapsedSeconds, axis.X(), axis.Y(), axis.Z())

	translationMat := gglm.NewTranslationMat(0, 0, -triangleDistance)
	return *translationMat.Mul(rotMat.Clone())
}

func TriangleMVP(elapsedSeconds, aspectRatio float32) gglm.Mat4 {

	modelMat := TriangleModelMat(elapsedSeconds)
	projMat := gglm.Perspective(fovRad, aspectRatio, nearClip, farClip)

	return *projMat.Mul(&modelMat.Mat4)
}
