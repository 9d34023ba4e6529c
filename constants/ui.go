package constants

import "image/color"

// Default window size
const (
	ScreenW = 800
	ScreenH = 600
)

// Light theme palette
var (
	ColorBackground  = color.NRGBA{0xF5, 0xF3, 0xEE, 0xFF}
	ColorGrid        = color.NRGBA{0xE0, 0xDD, 0xD6, 0xFF}
	ColorAxis        = color.NRGBA{0xB0, 0xAA, 0xA0, 0xFF}
	ColorAxisLabel   = color.NRGBA{0x8A, 0x84, 0x78, 0xFF}
	ColorTarget      = color.NRGBA{0xD9, 0x4F, 0x4F, 0xFF}
	ColorTargetGlow  = color.NRGBA{0xD9, 0x4F, 0x4F, 0x2E}
	ColorSlope       = color.NRGBA{0x25, 0x63, 0xEB, 0xFF}
	ColorSlopeGlow   = color.NRGBA{0x25, 0x63, 0xEB, 0x2E}
	ColorSaucerBody  = color.NRGBA{0x9C, 0xA3, 0xAF, 0xFF}
	ColorSaucerRim   = color.NRGBA{0x6B, 0x72, 0x80, 0xFF}
	ColorSaucerDome  = color.NRGBA{0x25, 0x63, 0xEB, 0xB0}
	ColorSaucerGlow  = color.NRGBA{0x25, 0x63, 0xEB, 0x66}
	ColorLaserCore   = color.NRGBA{0x16, 0xA3, 0x4A, 0xFF}
	ColorLaserGlow   = color.NRGBA{0x16, 0xA3, 0x4A, 0x4D}
	ColorLaserOuter  = color.NRGBA{0x16, 0xA3, 0x4A, 0x14}
	ColorHitGlow     = color.NRGBA{0xF5, 0x9E, 0x0B, 0xFF}
	ColorText        = color.NRGBA{0x33, 0x30, 0x2B, 0xFF}
	ColorSuccess     = color.NRGBA{0x16, 0xA3, 0x4A, 0xFF}
	ColorFail        = color.NRGBA{0xD9, 0x4F, 0x4F, 0xFF}
	ColorOverlayFill = color.NRGBA{0, 0, 0, 0x80}
)

// ParticlePalette colors the hit burst, cycling by particle index
var ParticlePalette = []color.NRGBA{
	{0xF5, 0x9E, 0x0B, 0xFF},
	{0xEF, 0x44, 0x44, 0xFF},
	{0x22, 0xC5, 0x5E, 0xFF},
	{0x3B, 0x82, 0xF6, 0xFF},
	{0xEA, 0xB3, 0x08, 0xFF},
	{0xF9, 0x73, 0x16, 0xFF},
}

// RimLightPalette colors the five saucer rim lights
var RimLightPalette = []color.NRGBA{
	{0xEF, 0x44, 0x44, 0xFF},
	{0x22, 0xC5, 0x5E, 0xFF},
	{0xEA, 0xB3, 0x08, 0xFF},
}
