package render

// styleTemplate is the text/template for style.css, shared by the bundle and
// the standalone document.
const styleTemplate = `* {
  margin: 0;
  padding: 0;
  box-sizing: border-box;
  text-align: center;
}

body {
  font-family: '{{.Font}}', sans-serif;
  background-color: {{.Background}};
  color: {{.Primary}};
  line-height: 1.6;
  font-size: {{.BodySize}}px;
  overflow-x: hidden;
}
{{if .BackgroundImage}}
.bg-container {
  position: fixed;
  top: 0;
  left: 0;
  width: 100%;
  height: 100%;
  z-index: -1;
  background-image: url('{{.BackgroundImage}}');
  background-size: cover;
  background-position: center;
  opacity: 1.0;
}

body::before {
  content: '';
  position: fixed;
  top: 0;
  left: 0;
  width: 100%;
  height: 100%;
  z-index: -2;
  background-color: rgba(255, 255, 255, 0.5);
}
{{end}}
.text-container {
  background-color: transparent;
  padding: 2rem;
  margin-bottom: 2rem;
{{- if .Effects}}
  text-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);
{{- end}}
}

.container {
  max-width: 1000px;
  margin: 0 auto;
  padding: 2rem;
  text-align: center;
}

header {
  text-align: center;
  padding: 3rem 1rem;
}

h1, h2, h3 {
  color: {{.Primary}};
  font-size: {{.HeaderSize}}px;
  margin-bottom: 1rem;
  text-align: center;
}

p {
  text-align: center;
}

.couple-names {
  font-size: {{.CoupleSize}}px;
  font-weight: bold;
  margin-bottom: 1rem;
  text-align: center;
{{- if .Effects}}
  background: linear-gradient(90deg, {{.Primary}}, {{.Secondary}}, {{.Primary}});
  background-size: 200% auto;
  -webkit-background-clip: text;
  -webkit-text-fill-color: transparent;
  animation: shine 3s linear infinite;
{{- end}}
{{- if .Emboss}}
  filter: drop-shadow(1px 1px 0 rgba(255, 255, 255, 0.6)) drop-shadow(-1px -1px 0 rgba(0, 0, 0, 0.15));
{{- end}}
}

.date-time {
  font-size: {{.DateSize}}px;
  margin-bottom: 1rem;
  color: {{.Secondary}};
  text-align: center;
}

.location {
  margin-bottom: 2rem;
  text-align: center;
}

.message {
  font-style: italic;
  margin: 2rem 0;
  padding: 1rem;
  border-left: 4px solid {{.Secondary}};
  text-align: center;
}

.parents-message {
  font-style: italic;
  margin: 2rem 0;
  padding: 1rem;
  border-left: 4px solid {{.Secondary}};
  text-align: center;
  color: {{.Secondary}};
}

.section {
  margin: 4rem 0;
  padding: 2rem;
  background-color: transparent;
  border-radius: 10px;
  text-align: center;
{{- if .RGB}}
  position: relative;
  z-index: 1;
{{- end}}
{{- if .Effects}}
  transition: transform 0.3s ease;
{{- end}}
}
{{if .RGB}}
.section::before {
  content: '';
  position: absolute;
  top: -{{.Border}}px;
  left: -{{.Border}}px;
  right: -{{.Border}}px;
  bottom: -{{.Border}}px;
  z-index: -1;
  background: {{.Gradient}};
  background-size: 400% 400%;
  border-radius: 12px;
  filter: blur(3px);
  opacity: {{.Opacity}};
  animation: flowingBorder {{.Speed}}s linear infinite;
}
{{end}}
{{- if .Effects}}
.section:hover {
  transform: translateY(-5px);
}
{{end}}
.section-title {
  text-align: center;
  margin-bottom: 2rem;
  position: relative;
}

.section-title:after {
  content: '';
  display: block;
  width: 50px;
  height: 3px;
  background-color: {{.Secondary}};
  margin: 1rem auto;
}

.gallery {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(250px, 1fr));
  gap: 1rem;
}

.gallery-item {
  overflow: hidden;
  border-radius: 8px;
{{- if .Effects}}
  transition: transform 0.3s ease;
{{- end}}
}
{{if .Effects}}
.gallery-item:hover {
  transform: scale(1.05);
}
{{end}}
.gallery-item img {
  width: 100%;
  height: 200px;
  object-fit: cover;
  display: block;
}

.map-container {
  height: 400px;
  border-radius: 8px;
  overflow: hidden;
  background-color: #f5f5f5;
  display: flex;
  align-items: center;
  justify-content: center;
  color: #666;
  font-style: italic;
}

.main-image-container {
  display: flex;
  justify-content: center;
  margin: 2rem 0;
}

.main-image {
  position: relative;
  width: 250px;
  height: 250px;
  margin: 0 auto;
}

.main-image-frame {
  width: 100%;
  height: 100%;
  border-radius: {{.Radius}};
  overflow: hidden;
  position: relative;
  z-index: 1;
  border: 2px solid white;
}

.main-image-frame img {
  width: 100%;
  height: 100%;
  object-fit: cover;
}

.couple-photos {
  display: flex;
  justify-content: space-around;
  margin: 2rem 0;
  flex-wrap: wrap;
  background-color: transparent;
  padding: 2rem;
  text-align: center;
}

.photo-container {
  position: relative;
  width: 200px;
  height: 200px;
  margin: 1rem;
}

.photo-frame {
  width: 100%;
  height: 100%;
  border-radius: 50%;
  overflow: hidden;
  position: relative;
  z-index: 1;
  border: 2px solid white;
}

.photo-frame img {
  width: 100%;
  height: 100%;
  object-fit: cover;
}
{{if .Shadows}}
.main-image-frame, .photo-frame {
  box-shadow: 0 8px 16px rgba(0, 0, 0, 0.2);
}
{{end}}
{{- if .Hover}}
.main-image-frame img, .photo-frame img {
  transition: transform 0.3s ease;
}

.main-image-frame:hover img, .photo-frame:hover img {
  transform: scale(1.05);
}
{{end}}
/* Music player */
.music-player {
  position: fixed;
  bottom: 20px;
  right: 20px;
  z-index: 100;
  background-color: rgba(255, 255, 255, 0.8);
  border-radius: 50%;
  width: 50px;
  height: 50px;
  display: flex;
  align-items: center;
  justify-content: center;
  box-shadow: 0 2px 10px rgba(0, 0, 0, 0.1);
  cursor: pointer;
  transition: all 0.3s ease;
}

.music-player:hover {
  transform: scale(1.1);
}

.music-player.playing {
  background-color: rgba(0, 0, 0, 0.8);
}

.music-player i {
  color: {{.Primary}};
  font-size: 20px;
}

/* Digital gifts */
.gift-container {
  display: flex;
  flex-wrap: wrap;
  justify-content: center;
  gap: 1rem;
  margin: 2rem 0;
}

.gift-card {
  background-color: white;
  border-radius: 8px;
  padding: 1.5rem;
  box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);
  width: 300px;
  text-align: center;
}

.gift-card-header {
  margin-bottom: 1rem;
  font-weight: bold;
  color: {{.Primary}};
}

.gift-card-content {
  margin-bottom: 1rem;
}

.gift-card-number {
  background-color: #f5f5f5;
  padding: 0.5rem;
  border-radius: 4px;
  font-family: monospace;
  font-size: 1.1em;
  margin: 0.5rem 0;
}

/* RSVP */
.rsvp-form {
  max-width: 600px;
  margin: 0 auto;
  background-color: rgba(255, 255, 255, 0.8);
  padding: 2rem;
  border-radius: 8px;
  box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);
}

.form-group {
  margin-bottom: 1.5rem;
  text-align: left;
}

.form-label {
  display: block;
  margin-bottom: 0.5rem;
  font-weight: bold;
  color: {{.Primary}};
}

.form-input, .form-textarea, .form-select {
  width: 100%;
  padding: 0.75rem;
  border: 1px solid #ddd;
  border-radius: 4px;
  font-family: inherit;
  font-size: 1rem;
}

.form-textarea {
  min-height: 100px;
}

.form-select {
  background-color: white;
}

.form-button {
  background-color: {{.Primary}};
  color: white;
  border: none;
  padding: 0.75rem 1.5rem;
  border-radius: 4px;
  font-size: 1rem;
  cursor: pointer;
  transition: background-color 0.3s ease;
}

.form-button:hover {
  background-color: {{.Secondary}};
}

.guest-link {
  cursor: pointer;
  color: blue;
  text-decoration: underline;
}

/* Guest list */
table {
  width: 100%;
  border-collapse: collapse;
  margin: 20px 0;
}

th, td {
  padding: 10px;
  text-align: left;
  border: 1px solid #ddd;
}

th {
  background-color: #f4f4f4;
  color: #333;
}

.guest-toolbar {
  display: flex;
  align-items: center;
  justify-content: space-between;
  margin-bottom: 10px;
}

.guest-actions {
  display: flex;
  gap: 10px;
}

.pagination {
  text-align: center;
  margin-top: 20px;
}

.pagination button {
  margin: 0 5px;
  padding: 5px 10px;
  border: none;
  background-color: #007bff;
  color: #fff;
  border-radius: 4px;
  cursor: pointer;
}

.pagination button.active, .pagination button:hover {
  background-color: #0056b3;
}

.modal {
  position: fixed;
  z-index: 1000;
  left: 0;
  top: 0;
  width: 100%;
  height: 100%;
  overflow: auto;
  background-color: rgba(0, 0, 0, 0.5);
  display: flex;
  justify-content: center;
  align-items: center;
}

.modal-content {
  background-color: #fff;
  padding: 20px;
  border-radius: 8px;
  width: 400px;
  box-shadow: 0 4px 8px rgba(0, 0, 0, 0.2);
  position: relative;
}

.close-btn {
  position: absolute;
  top: 10px;
  right: 10px;
  font-size: 20px;
  cursor: pointer;
}
{{if .Effects}}
.photo-border {
  position: relative;
}

.photo-border::before {
  content: '';
  position: absolute;
  top: -{{.Border}}px;
  left: -{{.Border}}px;
  right: -{{.Border}}px;
  bottom: -{{.Border}}px;
  z-index: -1;
  background: {{.Gradient}};
  background-size: 400% 400%;
  border-radius: 50%;
  filter: blur(3px);
  opacity: {{.Opacity}};
  animation: flowingBorder {{.Speed}}s linear infinite;
}

.rgb-border {
  position: relative;
  z-index: 1;
  border-radius: 10px;
}

.rgb-border::before {
  content: '';
  position: absolute;
  top: -{{.Border}}px;
  left: -{{.Border}}px;
  right: -{{.Border}}px;
  bottom: -{{.Border}}px;
  z-index: -1;
  background: {{.Gradient}};
  background-size: 400% 400%;
  border-radius: 12px;
  filter: blur(3px);
  opacity: {{.Opacity}};
  animation: flowingBorder {{.Speed}}s linear infinite;
}

@keyframes flowingBorder {
  0% { background-position: 0% 50%; }
  50% { background-position: 100% 50%; }
  100% { background-position: 0% 50%; }
}

@keyframes shine {
  to {
    background-position: 200% center;
  }
}
{{end}}
footer {
  text-align: center;
  padding: 2rem;
  margin-top: 4rem;
  color: {{.Primary}};
}

/* Responsive design */
@media (max-width: 768px) {
  .container {
    padding: 0.5rem;
    width: 100%;
    max-width: 100%;
  }

  header {
    padding: 1.5rem 1rem;
  }

  .couple-names {
    font-size: {{.CoupleSizeMd}}px;
  }

  .date-time {
    font-size: {{.DateSizeMd}}px;
  }

  .section {
    padding: 1.5rem;
    margin: 1.5rem 0;
  }

  .gallery {
    grid-template-columns: repeat(auto-fill, minmax(120px, 1fr));
    gap: 0.5rem;
  }

  .text-container {
    padding: 1rem;
  }

  .map-container {
    height: 300px;
  }

  .message, .parents-message {
    padding: 0.5rem;
  }

  .couple-photos {
    flex-direction: column;
    align-items: center;
  }

  .main-image {
    width: 200px;
    height: 200px;
  }

  .gift-container {
    flex-direction: column;
    align-items: center;
  }

  .gift-card {
    width: 100%;
  }

  table, thead, tbody, th, td, tr {
    display: block;
  }

  thead tr {
    position: absolute;
    top: -9999px;
    left: -9999px;
  }

  tr {
    border: 1px solid #ccc;
    margin-bottom: 10px;
  }

  td {
    border: none;
    border-bottom: 1px solid #eee;
    position: relative;
    padding-left: 50%;
    text-align: right;
  }

  td:before {
    position: absolute;
    top: 6px;
    left: 6px;
    width: 45%;
    padding-right: 10px;
    white-space: nowrap;
    content: attr(data-label);
    font-weight: bold;
    text-align: left;
  }

  .modal-content {
    width: 90%;
  }
}

@media (max-width: 480px) {
  .couple-names {
    font-size: {{.CoupleSizeSm}}px;
  }

  .date-time {
    font-size: {{.DateSizeSm}}px;
  }

  .section {
    padding: 1rem;
    margin: 1rem 0;
  }

  .photo-container {
    width: 150px;
    height: 150px;
  }

  .main-image {
    width: 180px;
    height: 180px;
  }

  td {
    padding: 8px 10px;
  }
}

/* Image errors */
img {
  min-height: 20px;
  min-width: 20px;
}

img.error {
  position: relative;
  background-color: #f8f8f8;
}

img.error::after {
  content: 'Image could not be loaded';
  position: absolute;
  top: 50%;
  left: 50%;
  transform: translate(-50%, -50%);
  font-size: 14px;
  color: #666;
}

/* Loading indicator */
.loading-container {
  position: fixed;
  top: 0;
  left: 0;
  width: 100%;
  height: 100%;
  display: flex;
  align-items: center;
  justify-content: center;
  background-color: rgba(255, 255, 255, 0.8);
  z-index: 9999;
}

.loading-spinner {
  border: 4px solid rgba(0, 0, 0, 0.1);
  border-left-color: {{.Primary}};
  border-radius: 50%;
  width: 40px;
  height: 40px;
  animation: spin 1s linear infinite;
}

@keyframes spin {
  0% { transform: rotate(0deg); }
  100% { transform: rotate(360deg); }
}
`

// scriptTemplate is the text/template for script.js. It only reads the
// initial music volume.
const scriptTemplate = `// Replace images that fail to load with an empty frame.
function handleImageError(img) {
  img.onerror = null;
  img.classList.add('error');
  img.src = 'data:image/svg+xml;charset=utf-8,%3Csvg xmlns%3D%22http%3A%2F%2Fwww.w3.org%2F2000%2Fsvg%22 viewBox%3D%220 0 1 1%22%3E%3C%2Fsvg%3E';
  img.alt = 'Image failed to load';
  img.style.backgroundColor = '#f8f8f8';
  img.style.border = '1px dashed #ccc';
}

function openGuestList() {
  window.open('guest.html', '_blank');
}

// Local RSVP store shared with guest.html.
function openRSVPDatabase(onReady) {
  if (!window.indexedDB) {
    return;
  }
  const request = indexedDB.open('RSVPDatabase', 1);
  request.onupgradeneeded = function (event) {
    const db = event.target.result;
    if (!db.objectStoreNames.contains('RSVPStore')) {
      db.createObjectStore('RSVPStore', { keyPath: 'id', autoIncrement: true });
    }
  };
  request.onsuccess = function (event) {
    onReady(event.target.result);
  };
  request.onerror = function (event) {
    console.error('IndexedDB error:', event.target.error);
  };
}

window.addEventListener('DOMContentLoaded', function () {
  document.querySelectorAll('img').forEach(function (img) {
    img.addEventListener('error', function () {
      handleImageError(this);
    });
  });

  const loadingContainer = document.getElementById('loading-container');
  if (loadingContainer) {
    loadingContainer.style.display = 'none';
  }

  const attendingSelect = document.getElementById('attending');
  const guestsGroup = document.getElementById('guests-group');
  if (attendingSelect && guestsGroup) {
    attendingSelect.addEventListener('change', function () {
      guestsGroup.style.display = this.value === 'yes' ? 'block' : 'none';
    });
  }

  const rsvpForm = document.getElementById('rsvp-form');
  if (rsvpForm) {
    rsvpForm.addEventListener('submit', function (event) {
      event.preventDefault();
      const attending = document.getElementById('attending').value;
      const record = {
        name: document.getElementById('name').value,
        address: document.getElementById('alamat').value,
        phone: document.getElementById('phone').value,
        attending: attending,
        guests: attending === 'yes' ? document.getElementById('guests').value : null,
        message: document.getElementById('message').value
      };
      openRSVPDatabase(function (db) {
        const transaction = db.transaction('RSVPStore', 'readwrite');
        transaction.objectStore('RSVPStore').add(record);
        transaction.oncomplete = function () {
          alert('Thank you for your RSVP! We have received your response.');
          rsvpForm.reset();
          if (guestsGroup) {
            guestsGroup.style.display = 'none';
          }
        };
        transaction.onerror = function (event) {
          console.error('Transaction error:', event.target.error);
        };
      });
    });
  }

  const musicPlayer = document.getElementById('music-player');
  const audio = document.getElementById('background-music');
  if (musicPlayer && audio) {
    audio.volume = {{.Volume}};

    audio.onerror = function () {
      console.error('Error loading audio file');
      musicPlayer.style.display = 'none';
    };

    function updatePlayerState() {
      if (!audio.paused) {
        musicPlayer.classList.add('playing');
        musicPlayer.innerHTML = '<i class="fas fa-pause"></i>';
      } else {
        musicPlayer.classList.remove('playing');
        musicPlayer.innerHTML = '<i class="fas fa-music"></i>';
      }
    }

    musicPlayer.addEventListener('click', function () {
      if (audio.paused) {
        audio.play().catch(function (error) {
          console.error('Error playing audio:', error);
        });
      } else {
        audio.pause();
      }
      updatePlayerState();
    });

    audio.addEventListener('play', updatePlayerState);
    audio.addEventListener('pause', updatePlayerState);
    updatePlayerState();
  }
});
`

// guestScript drives guest.html: it lists the records of the local RSVP
// store five per page, adds records from the modal form and exports the
// list as a PDF.
const guestScript = `const dbName = 'RSVPDatabase';
const storeName = 'RSVPStore';
const rowsPerPage = 5;

let db;
let guestList = [];
let currentPage = 1;

function initDB() {
  const request = indexedDB.open(dbName, 1);
  request.onupgradeneeded = function (event) {
    db = event.target.result;
    if (!db.objectStoreNames.contains(storeName)) {
      db.createObjectStore(storeName, { keyPath: 'id', autoIncrement: true });
    }
  };
  request.onsuccess = function (event) {
    db = event.target.result;
    loadData();
  };
  request.onerror = function (event) {
    console.error('Error opening IndexedDB:', event.target.error);
  };
}

function loadData() {
  const request = db.transaction([storeName], 'readonly').objectStore(storeName).getAll();
  request.onsuccess = function () {
    guestList = request.result;
    renderTable();
    renderPagination();
  };
  request.onerror = function () {
    console.error('Error fetching data.');
  };
}

function cell(label, value) {
  const td = document.createElement('td');
  td.setAttribute('data-label', label);
  td.textContent = value === undefined || value === null || value === '' ? '-' : value;
  return td;
}

function renderTable() {
  const tbody = document.getElementById('guest-list');
  tbody.innerHTML = '';
  document.getElementById('empty-message').style.display = guestList.length === 0 ? 'block' : 'none';

  const start = (currentPage - 1) * rowsPerPage;
  const end = Math.min(start + rowsPerPage, guestList.length);
  for (let i = start; i < end; i++) {
    const guest = guestList[i];
    const row = document.createElement('tr');
    row.appendChild(cell('#', i + 1));
    row.appendChild(cell('Name', guest.name));
    row.appendChild(cell('Address', guest.address));
    row.appendChild(cell('Phone', guest.phone));
    row.appendChild(cell('Attending', guest.attending));
    row.appendChild(cell('Guests', guest.guests));
    row.appendChild(cell('Message', guest.message));
    tbody.appendChild(row);
  }
}

function renderPagination() {
  const pagination = document.getElementById('pagination');
  pagination.innerHTML = '';

  const totalPages = Math.ceil(guestList.length / rowsPerPage);
  if (totalPages <= 1) {
    return;
  }
  for (let i = 1; i <= totalPages; i++) {
    const btn = document.createElement('button');
    btn.textContent = i;
    if (i === currentPage) {
      btn.classList.add('active');
    }
    btn.addEventListener('click', function () {
      currentPage = i;
      renderTable();
      renderPagination();
    });
    pagination.appendChild(btn);
  }
}

const modal = document.getElementById('rsvp-modal');
document.getElementById('show-rsvp-form-btn').addEventListener('click', function () {
  modal.style.display = 'flex';
});
document.getElementById('close-modal-btn').addEventListener('click', function () {
  modal.style.display = 'none';
});
window.addEventListener('click', function (event) {
  if (event.target === modal) {
    modal.style.display = 'none';
  }
});

const attendingSelect = document.getElementById('attending');
const guestsContainer = document.getElementById('guests-container');
attendingSelect.addEventListener('change', function () {
  if (attendingSelect.value === 'yes') {
    guestsContainer.style.display = 'block';
  } else {
    guestsContainer.style.display = 'none';
    document.getElementById('guests').value = '';
  }
});

document.getElementById('rsvp-form').addEventListener('submit', function (event) {
  event.preventDefault();
  const guests = document.getElementById('guests').value;
  const record = {
    name: document.getElementById('name').value.trim(),
    address: document.getElementById('address').value.trim(),
    phone: document.getElementById('phone').value.trim(),
    attending: attendingSelect.value,
    guests: guests !== '' ? parseInt(guests, 10) : 0,
    message: document.getElementById('message').value.trim()
  };

  const transaction = db.transaction([storeName], 'readwrite');
  transaction.objectStore(storeName).add(record);
  transaction.oncomplete = function () {
    alert('RSVP added successfully!');
    document.getElementById('rsvp-form').reset();
    modal.style.display = 'none';
    loadData();
  };
  transaction.onerror = function () {
    console.error('Failed to save RSVP');
  };
});

document.getElementById('download-pdf-btn').addEventListener('click', function () {
  if (guestList.length === 0) {
    alert('No data available to download.');
    return;
  }
  const doc = new window.jspdf.jsPDF();
  doc.setFontSize(16);
  doc.text('Guest List', 10, 10);
  doc.setFontSize(12);
  let y = 20;
  doc.text(['#', 'Name', 'Address', 'Phone', 'Attending', 'Guests', 'Message'].join(' | '), 10, y);
  guestList.forEach(function (guest, index) {
    y += 10;
    if (y > 280) {
      doc.addPage();
      y = 20;
    }
    doc.text([
      index + 1,
      guest.name || '-',
      guest.address || '-',
      guest.phone || '-',
      guest.attending || '-',
      guest.guests !== undefined && guest.guests !== null ? guest.guests : '-',
      guest.message || '-'
    ].join(' | '), 10, y);
  });
  doc.save('guest_list.pdf');
});

window.addEventListener('load', initDB);
`
