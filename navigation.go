package main

func (m *model) handleNavigation(key string) {
	m.handlePan(key, m.getMoveSpeed(key))
}

func (m *model) handlePan(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.panX -= speed
	case "l", "right", "L", "shift+right":
		m.panX += speed
	case "k", "up", "K", "shift+up":
		m.panY -= speed
	case "j", "down", "J", "shift+down":
		m.panY += speed
	}
	m.ensurePanInBounds()
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return fastPanStep
	default:
		return panStep
	}
}

func (m *model) handleZoom(key string) {
	switch key {
	case "+", "=":
		if m.zoom < len(zoomLevels)-1 {
			m.zoom++
		}
	case "-", "_":
		if m.zoom > 0 {
			m.zoom--
		}
	}
	m.rebuildGrid()
	m.ensurePanInBounds()
}

// ensurePanInBounds keeps the viewport over the drawn grid.
func (m *model) ensurePanInBounds() {
	cols, rows := m.gridSize()
	viewW, viewH := m.viewportSize()
	m.panX = clamp(m.panX, 0, max(0, cols-viewW))
	m.panY = clamp(m.panY, 0, max(0, rows-viewH))
}
